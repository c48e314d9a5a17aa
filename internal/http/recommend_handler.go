package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"rain-scent/internal/domain"
	"rain-scent/internal/service"
)

type QuizRunner interface {
	Complete(ctx context.Context, answers []domain.UserAnswer) (domain.QuizResult, error)
	GetResult(ctx context.Context, id string) (domain.QuizResult, error)
}

type LocalRecommender interface {
	Recommend(answers []domain.UserAnswer) []domain.RecommendationResult
}

type RecommendHandler struct {
	logger *zap.Logger
	quiz   QuizRunner
	local  LocalRecommender
}

func NewRecommendHandler(logger *zap.Logger, quiz QuizRunner, local LocalRecommender) *RecommendHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecommendHandler{logger: logger, quiz: quiz, local: local}
}

type recommendRequest struct {
	Answers []domain.UserAnswer `json:"answers" binding:"required,dive"`
}

// Recommend maneja POST /recommend.
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid recommend request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.quiz.Complete(c.Request.Context(), req.Answers)
	if err != nil {
		h.logger.Error("recommend failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build recommendation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"data":     result.Recommendation,
		"fallback": result.Source == domain.SourceFallback,
		"source":   result.Source,
		"resultId": result.ID,
	})
}

// RecommendLocal maneja POST /recommend/local: solo el ranking determinista, sin LLM.
func (h *RecommendHandler) RecommendLocal(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid local recommend request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": h.local.Recommend(req.Answers)})
}

// GetResult maneja GET /results/:id.
func (h *RecommendHandler) GetResult(c *gin.Context) {
	id := c.Param("id")
	result, err := h.quiz.GetResult(c.Request.Context(), id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"result": result})
	case errors.Is(err, service.ErrResultsNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "result storage not configured"})
	case errors.Is(err, pgx.ErrNoRows):
		c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
	default:
		h.logger.Error("get result failed", zap.String("result_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load result"})
	}
}
