package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"rain-scent/internal/domain"
	"rain-scent/internal/llm"
	"rain-scent/internal/metrics"
)

// AICatalog es lo que el servicio de IA necesita del catalogo: preguntas, perfumes y busqueda por id.
type AICatalog interface {
	PerfumeCatalog
	Perfume(id string) (domain.Perfume, bool)
}

type AIOptions struct {
	Timeout            time.Duration
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

// AIRecommendationService pide la recomendacion al LLM y cae al ranking local ante cualquier fallo.
type AIRecommendationService struct {
	llmClient llm.LLMClient
	catalog   AICatalog
	local     *RecommendationService
	cache     RecommendationCache
	breaker   *gobreaker.CircuitBreaker
	metrics   *metrics.Collector
	timeout   time.Duration
	logger    *zap.Logger
}

func NewAIRecommendationService(
	llmClient llm.LLMClient,
	catalog AICatalog,
	local *RecommendationService,
	cache RecommendationCache,
	collector *metrics.Collector,
	opts AIOptions,
	logger *zap.Logger,
) *AIRecommendationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.BreakerMaxFailures == 0 {
		opts.BreakerMaxFailures = 5
	}
	if opts.BreakerOpenTimeout <= 0 {
		opts.BreakerOpenTimeout = 30 * time.Second
	}
	if local == nil {
		local = NewRecommendationService(catalog, nil, logger)
	}

	maxFailures := opts.BreakerMaxFailures
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "llm",
		MaxRequests: 1,
		Timeout:     opts.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &AIRecommendationService{
		llmClient: llmClient,
		catalog:   catalog,
		local:     local,
		cache:     cache,
		breaker:   breaker,
		metrics:   collector,
		timeout:   opts.Timeout,
		logger:    logger,
	}
}

// Recommend nunca falla: devuelve la recomendacion y su origen (ai, cache o fallback).
func (s *AIRecommendationService) Recommend(ctx context.Context, answers []domain.UserAnswer) (domain.AIRecommendation, string) {
	key := AnswersCacheKey(answers)

	if s.cache != nil {
		rec, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("recommendation cache get failed", zap.Error(err))
		}
		if ok {
			s.metrics.IncRecommendation(domain.SourceCache)
			return rec, domain.SourceCache
		}
	}

	rec, err := s.recommendWithLLM(ctx, answers)
	if err != nil {
		s.logger.Warn("ai recommendation failed, using local fallback",
			zap.Error(err),
			zap.Int("answers", len(answers)),
		)
		s.metrics.IncRecommendation(domain.SourceFallback)
		return FallbackRecommendation(s.local.Recommend(answers)), domain.SourceFallback
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, rec); err != nil {
			s.logger.Warn("recommendation cache set failed", zap.Error(err))
		}
	}
	s.metrics.IncRecommendation(domain.SourceAI)
	return rec, domain.SourceAI
}

var errLLMNotConfigured = errors.New("llm client not configured")

func (s *AIRecommendationService) recommendWithLLM(ctx context.Context, answers []domain.UserAnswer) (domain.AIRecommendation, error) {
	if s.llmClient == nil {
		return domain.AIRecommendation{}, errLLMNotConfigured
	}

	var perfumes []domain.Perfume
	if s.catalog != nil {
		perfumes = s.catalog.Perfumes()
	}
	prompt, err := BuildRecommendationPrompt(s.catalog, perfumes, answers)
	if err != nil {
		return domain.AIRecommendation{}, err
	}

	start := time.Now()
	out, err := s.breaker.Execute(func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		raw, err := s.llmClient.Generate(callCtx, prompt)
		if err != nil {
			return nil, err
		}
		// una respuesta que no se puede parsear cuenta como fallo del proveedor
		return ParseAIRecommendation(raw, s.resolver())
	})
	s.metrics.ObserveLLM(llmOutcome(err), time.Since(start))
	if err != nil {
		return domain.AIRecommendation{}, fmt.Errorf("llm recommend: %w", err)
	}
	return out.(domain.AIRecommendation), nil
}

func (s *AIRecommendationService) resolver() PerfumeResolver {
	if s.catalog == nil {
		return nil
	}
	return s.catalog
}

func llmOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "rejected"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, ErrNoJSONObject), errors.Is(err, ErrNoAIRecommendations):
		return "invalid"
	default:
		return "error"
	}
}

// FallbackRecommendation arma una AIRecommendation con el ranking local y textos fijos.
// Con catalogo vacio devuelve solo los textos.
func FallbackRecommendation(results []domain.RecommendationResult) domain.AIRecommendation {
	rec := domain.AIRecommendation{
		UserProfile: domain.UserProfile{
			RainType:             "감성적인 도시 장마",
			EmotionalState:       "차분하고 사색적인 상태",
			PersonalityTrait:     "내향적이면서도 깊이 있는 성격",
			RecommendationReason: "당신의 깊은 감성과 잘 어울리는 향을 선택했습니다.",
		},
		TopRecommendations: make([]domain.AIPerfumeMatch, 0, len(results)),
		RainMoodAnalysis: domain.RainMoodAnalysis{
			DominantMood:       "평온한 사색",
			HiddenDesires:      "내면의 깊은 안정감",
			SeasonalConnection: "장마철의 차분한 리듬",
			AromaTherapyEffect: "마음의 평온과 집중력 향상",
		},
		PoeticMessage: "비가 내리는 창가에서\n당신만의 향기로 채워가는\n조용하고 아름다운 시간들이\n삶의 가장 소중한 순간이 됩니다.",
	}

	for _, r := range results {
		connection := r.RainMetaphor
		if len(r.MatchReasons) > 0 {
			connection = strings.Join(r.MatchReasons, ", ")
		}
		rec.TopRecommendations = append(rec.TopRecommendations, domain.AIPerfumeMatch{
			Perfume:             r.Perfume,
			MatchScore:          r.MatchScore,
			WhyPerfect:          r.PoeticDescription,
			WhenToWear:          whenToWear(r.Perfume.TimeOfDay),
			EmotionalConnection: connection,
		})
	}

	if len(results) > 0 {
		rec.UserProfile.RainType = RainTypeKorean(results[0].Perfume.RainType)
	}
	return rec
}

func whenToWear(t domain.TimeOfDay) string {
	if t == domain.TimeAnytime {
		return "비 오는 날 언제든, 혼자만의 시간을 가질 때"
	}
	return fmt.Sprintf("비 오는 %s, 혼자만의 시간을 가질 때", lookupOr(timeOfDayKorean, t, "저녁"))
}
