package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"rain-scent/internal/domain"
)

var (
	ErrNoJSONObject        = errors.New("no json object in llm response")
	ErrNoAIRecommendations = errors.New("llm response has no usable recommendations")
)

// PerfumeResolver permite reenlazar el perfume que nombra el modelo con el del catalogo.
type PerfumeResolver interface {
	Perfume(id string) (domain.Perfume, bool)
	Perfumes() []domain.Perfume
}

type aiRecommendationWire struct {
	UserProfile        domain.UserProfile      `json:"userProfile"`
	TopRecommendations []aiPerfumeMatchWire    `json:"topRecommendations"`
	RainMoodAnalysis   domain.RainMoodAnalysis `json:"rainMoodAnalysis"`
	PoeticMessage      string                  `json:"poeticMessage"`
}

type aiPerfumeMatchWire struct {
	Perfume             json.RawMessage `json:"perfume"`
	MatchScore          float64         `json:"matchScore"`
	WhyPerfect          string          `json:"whyPerfect"`
	WhenToWear          string          `json:"whenToWear"`
	EmotionalConnection string          `json:"emotionalConnection"`
}

// ParseAIRecommendation extrae y valida el JSON que devuelve el modelo.
// El perfume de cada recomendacion puede venir como objeto o como id/nombre;
// las entradas que no se pueden resolver contra el catalogo se descartan.
func ParseAIRecommendation(raw string, perfumes PerfumeResolver) (domain.AIRecommendation, error) {
	candidate := extractJSONCandidate(raw)
	if candidate == "" {
		return domain.AIRecommendation{}, ErrNoJSONObject
	}

	var wire aiRecommendationWire
	if err := json.Unmarshal([]byte(candidate), &wire); err != nil {
		return domain.AIRecommendation{}, fmt.Errorf("unmarshal llm json: %w", err)
	}

	out := domain.AIRecommendation{
		UserProfile:        wire.UserProfile,
		RainMoodAnalysis:   wire.RainMoodAnalysis,
		PoeticMessage:      strings.TrimSpace(wire.PoeticMessage),
		TopRecommendations: make([]domain.AIPerfumeMatch, 0, len(wire.TopRecommendations)),
	}
	for _, rec := range wire.TopRecommendations {
		perfume, ok := resolvePerfume(rec.Perfume, perfumes)
		if !ok {
			continue
		}
		out.TopRecommendations = append(out.TopRecommendations, domain.AIPerfumeMatch{
			Perfume:             perfume,
			MatchScore:          clampScore(rec.MatchScore),
			WhyPerfect:          strings.TrimSpace(rec.WhyPerfect),
			WhenToWear:          strings.TrimSpace(rec.WhenToWear),
			EmotionalConnection: strings.TrimSpace(rec.EmotionalConnection),
		})
	}

	if len(out.TopRecommendations) == 0 {
		return domain.AIRecommendation{}, ErrNoAIRecommendations
	}
	return out, nil
}

func resolvePerfume(raw json.RawMessage, perfumes PerfumeResolver) (domain.Perfume, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return domain.Perfume{}, false
	}

	var ref string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &ref); err != nil {
			return domain.Perfume{}, false
		}
		return lookupPerfume(strings.TrimSpace(ref), "", perfumes)
	}

	var p domain.Perfume
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.Perfume{}, false
	}
	if resolved, ok := lookupPerfume(p.ID, p.Name, perfumes); ok {
		return resolved, true
	}
	// sin catalogo para validar aceptamos el objeto si al menos trae nombre
	if perfumes == nil && strings.TrimSpace(p.Name) != "" {
		return p, true
	}
	return domain.Perfume{}, false
}

func lookupPerfume(id, name string, perfumes PerfumeResolver) (domain.Perfume, bool) {
	if perfumes == nil {
		return domain.Perfume{}, false
	}
	if id != "" {
		if p, ok := perfumes.Perfume(id); ok {
			return p, true
		}
	}
	// el modelo a veces devuelve el nombre en lugar del id
	for _, candidate := range []string{name, id} {
		if candidate == "" {
			continue
		}
		for _, p := range perfumes.Perfumes() {
			if strings.EqualFold(p.Name, candidate) {
				return p, true
			}
		}
	}
	return domain.Perfume{}, false
}

func clampScore(v float64) int {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > maxMatchScore {
		return int(maxMatchScore)
	}
	return int(math.Round(v))
}
