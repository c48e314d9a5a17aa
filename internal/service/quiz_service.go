package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rain-scent/internal/domain"
	"rain-scent/internal/repository"
)

var ErrResultsNotConfigured = errors.New("quiz result storage not configured")

// Recommender es la parte del servicio de IA que usa el quiz.
type Recommender interface {
	Recommend(ctx context.Context, answers []domain.UserAnswer) (domain.AIRecommendation, string)
}

// QuizService completa un quiz: pide la recomendacion y guarda el resultado si hay base de datos.
type QuizService struct {
	recommender Recommender
	results     repository.ResultRepository
	logger      *zap.Logger
	now         func() time.Time
}

func NewQuizService(recommender Recommender, results repository.ResultRepository, logger *zap.Logger) *QuizService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizService{
		recommender: recommender,
		results:     results,
		logger:      logger,
		now:         time.Now,
	}
}

// Complete no falla por errores de persistencia: el resultado se devuelve igual y se loguea el error.
func (s *QuizService) Complete(ctx context.Context, answers []domain.UserAnswer) (domain.QuizResult, error) {
	if s.recommender == nil {
		return domain.QuizResult{}, errors.New("recommender not configured")
	}

	rec, source := s.recommender.Recommend(ctx, answers)
	result := domain.QuizResult{
		ID:             uuid.NewString(),
		Answers:        answers,
		Recommendation: rec,
		Source:         source,
		CreatedAt:      s.now().UTC(),
	}

	if s.results != nil {
		if err := s.results.Create(ctx, result); err != nil {
			s.logger.Warn("persist quiz result failed", zap.String("result_id", result.ID), zap.Error(err))
		}
	}

	s.logger.Info("quiz completed",
		zap.String("result_id", result.ID),
		zap.String("source", source),
		zap.Int("recommendations", len(rec.TopRecommendations)),
	)
	return result, nil
}

func (s *QuizService) GetResult(ctx context.Context, id string) (domain.QuizResult, error) {
	if s.results == nil {
		return domain.QuizResult{}, ErrResultsNotConfigured
	}
	return s.results.GetByID(ctx, id)
}
