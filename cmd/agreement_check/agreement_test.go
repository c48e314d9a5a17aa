package main

import (
	"testing"

	"rain-scent/internal/catalog"
	"rain-scent/internal/domain"
)

func TestDefaultScenariosUseKnownOptions(t *testing.T) {
	cat := catalog.MustLoadEmbedded()
	for _, sc := range defaultScenarios() {
		for _, a := range sc.Answers {
			q, ok := cat.Question(a.QuestionID)
			if !ok {
				t.Fatalf("%s: unknown question %s", sc.Name, a.QuestionID)
			}
			for _, opt := range a.SelectedOptions {
				if _, ok := q.Option(opt); !ok {
					t.Fatalf("%s: unknown option %s for %s", sc.Name, opt, a.QuestionID)
				}
			}
		}
	}
}

func TestCompareAndRate(t *testing.T) {
	local := []domain.RecommendationResult{
		{Perfume: domain.Perfume{ID: "a"}},
		{Perfume: domain.Perfume{ID: "b"}},
		{Perfume: domain.Perfume{ID: "c"}},
	}
	hit := compare("hit", domain.AIRecommendation{TopRecommendations: []domain.AIPerfumeMatch{{Perfume: domain.Perfume{ID: "b"}}}}, domain.SourceAI, local)
	miss := compare("miss", domain.AIRecommendation{TopRecommendations: []domain.AIPerfumeMatch{{Perfume: domain.Perfume{ID: "z"}}}}, domain.SourceAI, local)
	fallback := compare("fb", domain.AIRecommendation{TopRecommendations: []domain.AIPerfumeMatch{{Perfume: domain.Perfume{ID: "a"}}}}, domain.SourceFallback, local)
	empty := compare("empty", domain.AIRecommendation{}, domain.SourceAI, local)

	if !hit.Agrees || miss.Agrees || empty.Agrees {
		t.Fatalf("unexpected agreement flags: hit=%v miss=%v empty=%v", hit.Agrees, miss.Agrees, empty.Agrees)
	}
	if len(hit.LocalTop) != 3 {
		t.Fatalf("expected local ids to be recorded")
	}

	rate, counted := agreementRate([]scenarioReport{hit, miss, fallback, empty})
	if counted != 3 {
		t.Fatalf("expected fallback to be excluded, counted=%d", counted)
	}
	if rate < 0.33 || rate > 0.34 {
		t.Fatalf("expected 1/3 agreement, got %f", rate)
	}

	if rate, counted := agreementRate(nil); rate != 0 || counted != 0 {
		t.Fatalf("expected zero rate for no reports")
	}
}
