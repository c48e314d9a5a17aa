package service

import (
	"math"
	"slices"

	"rain-scent/internal/domain"
)

const (
	weightRainType    = 40.0
	weightMood        = 30.0
	weightPersonality = 20.0
	weightIntensity   = 5.0
	weightTimeOfDay   = 5.0

	similarRainTypeCredit = 10.0
	maxMatchScore         = 100.0
)

// similarRainTypes da credito parcial cuando no hay coincidencia exacta de tipo de lluvia.
var similarRainTypes = map[domain.RainType][]domain.RainType{
	domain.RainMistyMorning:  {domain.RainGentleDrizzle, domain.RainAfterRain},
	domain.RainGentleDrizzle: {domain.RainMistyMorning, domain.RainOnLeaves},
	domain.RainSummerShower:  {domain.RainAfterRain, domain.RainUrban},
	domain.RainMelancholy:    {domain.RainWindowTapping},
	domain.RainStormyNight:   {},
	domain.RainAfterRain:     {domain.RainSummerShower, domain.RainMistyMorning},
	domain.RainWindowTapping: {domain.RainMelancholy, domain.RainGentleDrizzle},
	domain.RainOnLeaves:      {domain.RainForest, domain.RainGentleDrizzle},
	domain.RainUrban:         {domain.RainSummerShower},
	domain.RainForest:        {domain.RainOnLeaves, domain.RainMistyMorning},
}

// SimilarRainTypes devuelve los tipos de lluvia considerados cercanos a rt.
func SimilarRainTypes(rt domain.RainType) []domain.RainType {
	return similarRainTypes[rt]
}

// ScoreMatch puntua un perfume contra las preferencias. Siempre devuelve un valor en [0,100].
func ScoreMatch(perfume domain.Perfume, prefs domain.UserPreferences) int {
	score := rainTypeScore(perfume.RainType, prefs.RainTypes) +
		weightMood*overlapRatio(perfume.Mood, prefs.Moods) +
		weightPersonality*overlapRatio(perfume.Personality, prefs.Personalities)

	if slices.Contains(prefs.PreferredIntensity, perfume.Intensity) {
		score += weightIntensity
	}
	if perfume.TimeOfDay == domain.TimeAnytime || slices.Contains(prefs.PreferredTimeOfDay, perfume.TimeOfDay) {
		score += weightTimeOfDay
	}

	// el credito por similitud no tiene tope propio, asi que el clamp final es necesario
	score = math.Min(score, maxMatchScore)
	if score < 0 {
		score = 0
	}
	return int(math.Round(score))
}

func rainTypeScore(rt domain.RainType, preferred []domain.RainType) float64 {
	if slices.Contains(preferred, rt) {
		return weightRainType
	}
	similar := similarRainTypes[rt]
	count := 0
	for _, p := range preferred {
		if slices.Contains(similar, p) {
			count++
		}
	}
	return float64(count) * similarRainTypeCredit
}

// overlapRatio = |item ∩ prefs| / max(|item|, |prefs|); 0 cuando ambos estan vacios.
// Cuenta los elementos del item presentes en prefs, igual que el conteo de coincidencias por item.
func overlapRatio[T comparable](item, preferred []T) float64 {
	denom := max(len(item), len(preferred))
	if denom == 0 {
		return 0
	}
	set := make(map[T]struct{}, len(preferred))
	for _, p := range preferred {
		set[p] = struct{}{}
	}
	matches := 0
	for _, it := range item {
		if _, ok := set[it]; ok {
			matches++
		}
	}
	return float64(matches) / float64(denom)
}

func intersect[T comparable](item, preferred []T) []T {
	var out []T
	for _, it := range item {
		if slices.Contains(preferred, it) {
			out = append(out, it)
		}
	}
	return out
}
