package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rain-scent/internal/domain"
)

type CatalogReader interface {
	Questions() []domain.Question
	Perfumes() []domain.Perfume
}

// CatalogHandler expone las tablas estaticas del quiz.
type CatalogHandler struct {
	catalog CatalogReader
}

func NewCatalogHandler(catalog CatalogReader) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListQuestions maneja GET /questions.
func (h *CatalogHandler) ListQuestions(c *gin.Context) {
	questions := []domain.Question{}
	if h.catalog != nil {
		questions = h.catalog.Questions()
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// ListPerfumes maneja GET /perfumes.
func (h *CatalogHandler) ListPerfumes(c *gin.Context) {
	perfumes := []domain.Perfume{}
	if h.catalog != nil {
		perfumes = h.catalog.Perfumes()
	}
	c.JSON(http.StatusOK, gin.H{"perfumes": perfumes})
}
