package service

import (
	"math/rand/v2"
	"strings"
	"testing"

	"go.uber.org/zap"

	"rain-scent/internal/catalog"
	"rain-scent/internal/domain"
)

type fixedPicker int

func (f fixedPicker) IntN(int) int { return int(f) }

func TestRecommend_ForestAnswers(t *testing.T) {
	svc := NewRecommendationService(catalog.MustLoadEmbedded(), fixedPicker(0), zap.NewNop())
	answers := []domain.UserAnswer{
		{QuestionID: "q1", SelectedOptions: []string{"misty_forest"}},
		{QuestionID: "q2", SelectedOptions: []string{"peaceful_reflection"}},
		{QuestionID: "q7", SelectedOptions: []string{"deep_woody"}},
	}

	results := svc.Recommend(answers)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	wantIDs := []string{"forest-hymn", "leaf-droplet", "misty-dawn"}
	wantScores := []int{70, 40, 30}
	for i, r := range results {
		if r.Perfume.ID != wantIDs[i] || r.MatchScore != wantScores[i] {
			t.Fatalf("result %d: expected %s/%d, got %s/%d", i, wantIDs[i], wantScores[i], r.Perfume.ID, r.MatchScore)
		}
	}

	top := results[0]
	if len(top.MatchReasons) != 3 {
		t.Fatalf("expected rain/mood/personality reasons, got %v", top.MatchReasons)
	}
	if !strings.Contains(top.MatchReasons[0], "숲속의 비") {
		t.Fatalf("expected rain type reason, got %q", top.MatchReasons[0])
	}
	if !strings.Contains(top.MatchReasons[1], "평화로운, 사색적인") {
		t.Fatalf("expected mood reason, got %q", top.MatchReasons[1])
	}
	if top.RainMetaphor != "숲속의 빗소리처럼 깊고 평화로운 향" {
		t.Fatalf("unexpected metaphor %q", top.RainMetaphor)
	}
	if !strings.HasPrefix(top.PoeticDescription, top.Perfume.Description) {
		t.Fatalf("expected first template, got %q", top.PoeticDescription)
	}
}

func TestRecommend_EmptyAnswersUsesDefaults(t *testing.T) {
	svc := NewRecommendationService(catalog.MustLoadEmbedded(), fixedPicker(1), zap.NewNop())

	results := svc.Recommend(nil)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	// solo intensidad 3 (default) y anytime aportan puntos
	wantIDs := []string{"forest-hymn", "summer-burst", "blue-melancholy"}
	wantScores := []int{10, 5, 5}
	for i, r := range results {
		if r.Perfume.ID != wantIDs[i] || r.MatchScore != wantScores[i] {
			t.Fatalf("result %d: expected %s/%d, got %s/%d", i, wantIDs[i], wantScores[i], r.Perfume.ID, r.MatchScore)
		}
		if len(r.MatchReasons) != 0 {
			t.Fatalf("expected no reasons without answers, got %v", r.MatchReasons)
		}
	}
}

func TestRecommend_SortedAndIdempotent(t *testing.T) {
	svc := NewRecommendationService(catalog.MustLoadEmbedded(), rand.New(rand.NewPCG(1, 2)), zap.NewNop())
	answers := []domain.UserAnswer{
		{QuestionID: "q1", SelectedOptions: []string{"night_city"}},
		{QuestionID: "q3", SelectedOptions: []string{"cafe_jazz"}},
		{QuestionID: "q5", SelectedOptions: []string{"shared_moments"}},
		{QuestionID: "q7", SelectedOptions: []string{"sweet_floral"}},
	}

	first := svc.Recommend(answers)
	second := svc.Recommend(answers)
	if len(first) == 0 || len(first) > MaxRecommendations {
		t.Fatalf("unexpected result count %d", len(first))
	}
	for i := 1; i < len(first); i++ {
		if first[i].MatchScore > first[i-1].MatchScore {
			t.Fatalf("results not sorted: %d before %d", first[i-1].MatchScore, first[i].MatchScore)
		}
	}
	if len(first) != len(second) {
		t.Fatalf("expected same length across runs")
	}
	for i := range first {
		if first[i].Perfume.ID != second[i].Perfume.ID || first[i].MatchScore != second[i].MatchScore {
			t.Fatalf("ranking changed between runs at %d", i)
		}
	}
}

type stubCatalog struct {
	perfumes []domain.Perfume
}

func (s stubCatalog) Question(string) (domain.Question, bool) { return domain.Question{}, false }
func (s stubCatalog) Perfumes() []domain.Perfume { return s.perfumes }

func TestRecommend_EmptyCatalog(t *testing.T) {
	svc := NewRecommendationService(stubCatalog{}, nil, nil)
	results := svc.Recommend([]domain.UserAnswer{{QuestionID: "q1", SelectedOptions: []string{"x"}}})
	if results == nil || len(results) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", results)
	}
}

func TestRecommend_FewerThanThree(t *testing.T) {
	svc := NewRecommendationService(stubCatalog{perfumes: []domain.Perfume{
		{ID: "a", RainType: domain.RainUrban, Intensity: 1, TimeOfDay: domain.TimeNight},
		{ID: "b", RainType: domain.RainForest, Intensity: 3, TimeOfDay: domain.TimeAnytime},
	}}, fixedPicker(2), nil)

	results := svc.Recommend(nil)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Perfume.ID != "b" {
		t.Fatalf("expected higher score first, got %s", results[0].Perfume.ID)
	}
}

func TestRecommend_TiesKeepCatalogOrder(t *testing.T) {
	perfumes := []domain.Perfume{
		{ID: "first", RainType: domain.RainUrban, Intensity: 1, TimeOfDay: domain.TimeNight},
		{ID: "second", RainType: domain.RainUrban, Intensity: 1, TimeOfDay: domain.TimeNight},
		{ID: "third", RainType: domain.RainUrban, Intensity: 1, TimeOfDay: domain.TimeNight},
		{ID: "fourth", RainType: domain.RainUrban, Intensity: 1, TimeOfDay: domain.TimeNight},
	}
	svc := NewRecommendationService(stubCatalog{perfumes: perfumes}, fixedPicker(0), nil)

	results := svc.Recommend(nil)
	for i, want := range []string{"first", "second", "third"} {
		if results[i].Perfume.ID != want {
			t.Fatalf("expected %s at %d, got %s", want, i, results[i].Perfume.ID)
		}
	}
}

func TestNilRecommendationService(t *testing.T) {
	var svc *RecommendationService
	if got := svc.Recommend(nil); len(got) != 0 {
		t.Fatalf("expected empty results from nil service, got %v", got)
	}
}
