package service

import (
	"reflect"
	"slices"
	"testing"

	"rain-scent/internal/catalog"
	"rain-scent/internal/domain"
)

type mapQuestions map[string]domain.Question

func (m mapQuestions) Question(id string) (domain.Question, bool) {
	q, ok := m[id]
	return q, ok
}

func TestExtractPreferences_AccumulatesSignals(t *testing.T) {
	cat := catalog.MustLoadEmbedded()
	answers := []domain.UserAnswer{
		{QuestionID: "q1", SelectedOptions: []string{"misty_forest"}},
		{QuestionID: "q2", SelectedOptions: []string{"peaceful_reflection"}},
	}

	prefs := ExtractPreferences(cat, answers)

	if !reflect.DeepEqual(prefs.RainTypes, []domain.RainType{domain.RainForest}) {
		t.Fatalf("unexpected rain types: %v", prefs.RainTypes)
	}
	wantMoods := []domain.Mood{domain.MoodPeaceful, domain.MoodDreamy, domain.MoodPeaceful, domain.MoodContemplative}
	if !reflect.DeepEqual(prefs.Moods, wantMoods) {
		t.Fatalf("expected moods %v, got %v", wantMoods, prefs.Moods)
	}
	if len(prefs.Personalities) != 4 {
		t.Fatalf("expected 4 personalities (with duplicates), got %v", prefs.Personalities)
	}
	if !reflect.DeepEqual(prefs.PreferredIntensity, []int{2, 3}) {
		t.Fatalf("expected peaceful intensity {2,3}, got %v", prefs.PreferredIntensity)
	}
	if !reflect.DeepEqual(prefs.PreferredTimeOfDay, []domain.TimeOfDay{domain.TimeDawn, domain.TimeMorning}) {
		t.Fatalf("unexpected time of day: %v", prefs.PreferredTimeOfDay)
	}
}

func TestExtractPreferences_IgnoresUnknownIDs(t *testing.T) {
	cat := catalog.MustLoadEmbedded()
	answers := []domain.UserAnswer{
		{QuestionID: "q404", SelectedOptions: []string{"misty_forest"}},
		{QuestionID: "q1", SelectedOptions: []string{"not-an-option"}},
	}

	prefs := ExtractPreferences(cat, answers)
	if len(prefs.RainTypes) != 0 || len(prefs.Moods) != 0 || len(prefs.Personalities) != 0 {
		t.Fatalf("expected empty preferences, got %+v", prefs)
	}
	if !reflect.DeepEqual(prefs.PreferredIntensity, []int{3}) {
		t.Fatalf("expected default intensity {3}, got %v", prefs.PreferredIntensity)
	}
	if len(prefs.PreferredTimeOfDay) != 0 {
		t.Fatalf("expected no preferred time of day, got %v", prefs.PreferredTimeOfDay)
	}
}

func TestExtractPreferences_NilLookup(t *testing.T) {
	prefs := ExtractPreferences(nil, []domain.UserAnswer{{QuestionID: "q1", SelectedOptions: []string{"a"}}})
	if !reflect.DeepEqual(prefs.PreferredIntensity, []int{3}) {
		t.Fatalf("expected defaults with nil lookup, got %+v", prefs)
	}
}

func TestExtractPreferences_MultiSelect(t *testing.T) {
	questions := mapQuestions{
		"q": {ID: "q", Options: []domain.Option{
			{ID: "a", RainType: domain.RainUrban},
			{ID: "b", RainType: domain.RainForest, Mood: []domain.Mood{domain.MoodCozy}},
		}},
	}
	prefs := ExtractPreferences(questions, []domain.UserAnswer{{QuestionID: "q", SelectedOptions: []string{"a", "b"}}})
	if !reflect.DeepEqual(prefs.RainTypes, []domain.RainType{domain.RainUrban, domain.RainForest}) {
		t.Fatalf("expected both options to contribute, got %v", prefs.RainTypes)
	}
}

func TestInferIntensity_Priority(t *testing.T) {
	cases := []struct {
		name  string
		moods []domain.Mood
		want  []int
	}{
		{"dramatic wins over peaceful", []domain.Mood{domain.MoodPeaceful, domain.MoodDramatic}, []int{4, 5}},
		{"mysterious", []domain.Mood{domain.MoodMysterious}, []int{4, 5}},
		{"cozy", []domain.Mood{domain.MoodCozy}, []int{2, 3}},
		{"peaceful", []domain.Mood{domain.MoodPeaceful}, []int{2, 3}},
		{"other", []domain.Mood{domain.MoodRomantic}, []int{3}},
		{"empty", nil, []int{3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := inferIntensity(tc.moods); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestInferTimeOfDay_BothRulesFire(t *testing.T) {
	got := inferTimeOfDay(
		[]domain.RainType{domain.RainMistyMorning},
		[]domain.Mood{domain.MoodMysterious, domain.MoodPeaceful},
	)
	want := []domain.TimeOfDay{domain.TimeDawn, domain.TimeMorning, domain.TimeNight, domain.TimeEvening}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got = inferTimeOfDay([]domain.RainType{domain.RainStormyNight}, nil)
	if !reflect.DeepEqual(got, []domain.TimeOfDay{domain.TimeNight, domain.TimeEvening}) {
		t.Fatalf("expected stormy night to map to night/evening, got %v", got)
	}
}

func TestExtractPreferences_OrderIndependent(t *testing.T) {
	cat := catalog.MustLoadEmbedded()
	answers := []domain.UserAnswer{
		{QuestionID: "q1", SelectedOptions: []string{"dynamic_nature"}},
		{QuestionID: "q2", SelectedOptions: []string{"mysterious_curiosity"}},
		{QuestionID: "q3", SelectedOptions: []string{"earthy_insects"}},
		{QuestionID: "q6", SelectedOptions: []string{"humbling_nature"}},
	}
	reversed := slices.Clone(answers)
	slices.Reverse(reversed)

	a := ExtractPreferences(cat, answers)
	b := ExtractPreferences(cat, reversed)

	if !sameMultiset(a.RainTypes, b.RainTypes) || !sameMultiset(a.Moods, b.Moods) || !sameMultiset(a.Personalities, b.Personalities) {
		t.Fatalf("expected identical multisets, got %+v vs %+v", a, b)
	}
	if !sameMultiset(a.PreferredIntensity, b.PreferredIntensity) || !sameMultiset(a.PreferredTimeOfDay, b.PreferredTimeOfDay) {
		t.Fatalf("expected identical inferred lists, got %+v vs %+v", a, b)
	}
}

func sameMultiset[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[T]int, len(a))
	for _, x := range a {
		counts[x]++
	}
	for _, x := range b {
		counts[x]--
		if counts[x] < 0 {
			return false
		}
	}
	return true
}
