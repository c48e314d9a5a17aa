package main

import (
	"rain-scent/internal/domain"
)

type Scenario struct {
	Name    string
	Answers []domain.UserAnswer
}

type scenarioReport struct {
	Name     string
	Source   string
	AITop    string
	LocalTop []string
	Agrees   bool
}

func answers(pairs ...string) []domain.UserAnswer {
	out := make([]domain.UserAnswer, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.UserAnswer{QuestionID: pairs[i], SelectedOptions: []string{pairs[i+1]}})
	}
	return out
}

func defaultScenarios() []Scenario {
	return []Scenario{
		{Name: "도시의 밤", Answers: answers("q1", "night_city", "q3", "cafe_jazz", "q7", "mysterious_spicy")},
		{Name: "숲속 산책", Answers: answers("q1", "misty_forest", "q2", "peaceful_reflection", "q7", "deep_woody")},
		{Name: "폭풍우", Answers: answers("q1", "dynamic_nature", "q3", "thunder_symphony", "q4", "deep_tones")},
		{Name: "무응답", Answers: nil},
	}
}

// compare marca acuerdo si el primer perfume del LLM esta en el top local.
func compare(name string, ai domain.AIRecommendation, source string, local []domain.RecommendationResult) scenarioReport {
	r := scenarioReport{Name: name, Source: source}
	if len(ai.TopRecommendations) > 0 {
		r.AITop = ai.TopRecommendations[0].Perfume.ID
	}
	for _, l := range local {
		r.LocalTop = append(r.LocalTop, l.Perfume.ID)
		if l.Perfume.ID == r.AITop && r.AITop != "" {
			r.Agrees = true
		}
	}
	return r
}

// agreementRate ignora los escenarios que cayeron al fallback, porque ahi el top coincide por construccion.
func agreementRate(reports []scenarioReport) (rate float64, counted int) {
	agreed := 0
	for _, r := range reports {
		if r.Source == domain.SourceFallback {
			continue
		}
		counted++
		if r.Agrees {
			agreed++
		}
	}
	if counted == 0 {
		return 0, 0
	}
	return float64(agreed) / float64(counted), counted
}
