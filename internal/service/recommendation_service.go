package service

import (
	"sort"

	"go.uber.org/zap"

	"rain-scent/internal/domain"
)

// MaxRecommendations es la cantidad de resultados que devuelve el ranking local.
const MaxRecommendations = 3

// PerfumeCatalog expone las tablas estaticas que necesita el ranking.
type PerfumeCatalog interface {
	QuestionLookup
	Perfumes() []domain.Perfume
}

// RecommendationService rankea el catalogo localmente, sin llamar al LLM.
type RecommendationService struct {
	catalog PerfumeCatalog
	picker  Picker
	logger  *zap.Logger
}

func NewRecommendationService(catalog PerfumeCatalog, picker Picker, logger *zap.Logger) *RecommendationService {
	if picker == nil {
		picker = DefaultPicker
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecommendationService{
		catalog: catalog,
		picker:  picker,
		logger:  logger,
	}
}

// Recommend devuelve hasta MaxRecommendations perfumes ordenados por puntaje descendente.
// Los empates conservan el orden del catalogo.
func (s *RecommendationService) Recommend(answers []domain.UserAnswer) []domain.RecommendationResult {
	if s == nil || s.catalog == nil {
		return []domain.RecommendationResult{}
	}

	prefs := ExtractPreferences(s.catalog, answers)
	perfumes := s.catalog.Perfumes()

	results := make([]domain.RecommendationResult, 0, len(perfumes))
	for _, p := range perfumes {
		results = append(results, domain.RecommendationResult{
			Perfume:           p,
			MatchScore:        ScoreMatch(p, prefs),
			MatchReasons:      MatchReasons(p, prefs),
			PoeticDescription: PoeticDescription(p, s.picker),
			RainMetaphor:      RainMetaphor(p),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	if len(results) > MaxRecommendations {
		results = results[:MaxRecommendations]
	}

	s.logger.Debug("local ranking computed",
		zap.Int("answers", len(answers)),
		zap.Int("catalog_size", len(perfumes)),
		zap.Int("results", len(results)),
	)
	return results
}
