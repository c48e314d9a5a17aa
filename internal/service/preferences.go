package service

import (
	"slices"

	"rain-scent/internal/domain"
)

// QuestionLookup resuelve preguntas por id; *catalog.Catalog la implementa.
type QuestionLookup interface {
	Question(id string) (domain.Question, bool)
}

// ExtractPreferences acumula las señales de todas las opciones elegidas.
// Preguntas u opciones desconocidas se ignoran sin error.
func ExtractPreferences(questions QuestionLookup, answers []domain.UserAnswer) domain.UserPreferences {
	var prefs domain.UserPreferences

	for _, answer := range answers {
		if questions == nil {
			break
		}
		question, ok := questions.Question(answer.QuestionID)
		if !ok {
			continue
		}
		for _, optionID := range answer.SelectedOptions {
			option, ok := question.Option(optionID)
			if !ok {
				continue
			}
			if option.RainType != "" {
				prefs.RainTypes = append(prefs.RainTypes, option.RainType)
			}
			prefs.Moods = append(prefs.Moods, option.Mood...)
			prefs.Personalities = append(prefs.Personalities, option.Personality...)
		}
	}

	prefs.PreferredIntensity = inferIntensity(prefs.Moods)
	prefs.PreferredTimeOfDay = inferTimeOfDay(prefs.RainTypes, prefs.Moods)
	return prefs
}

// inferIntensity: la primera regla que aplica gana.
func inferIntensity(moods []domain.Mood) []int {
	switch {
	case slices.Contains(moods, domain.MoodDramatic) || slices.Contains(moods, domain.MoodMysterious):
		return []int{4, 5}
	case slices.Contains(moods, domain.MoodPeaceful) || slices.Contains(moods, domain.MoodCozy):
		return []int{2, 3}
	default:
		return []int{3}
	}
}

// inferTimeOfDay evalua ambas reglas de forma independiente, sin deduplicar.
func inferTimeOfDay(rainTypes []domain.RainType, moods []domain.Mood) []domain.TimeOfDay {
	var out []domain.TimeOfDay
	if slices.Contains(rainTypes, domain.RainMistyMorning) || slices.Contains(moods, domain.MoodPeaceful) {
		out = append(out, domain.TimeDawn, domain.TimeMorning)
	}
	if slices.Contains(rainTypes, domain.RainStormyNight) || slices.Contains(moods, domain.MoodMysterious) {
		out = append(out, domain.TimeNight, domain.TimeEvening)
	}
	return out
}
