package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"rain-scent/internal/domain"
)

// RecommendationCache guarda respuestas del LLM ya parseadas, indexadas por las respuestas del quiz.
type RecommendationCache interface {
	Get(ctx context.Context, key string) (domain.AIRecommendation, bool, error)
	Set(ctx context.Context, key string, rec domain.AIRecommendation) error
}

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisRecommendationCache struct {
	client redisKV
	ttl    time.Duration
	prefix string
}

func NewRedisRecommendationCache(client *redis.Client, ttl time.Duration) RecommendationCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &redisRecommendationCache{
		client: client,
		ttl:    ttl,
		prefix: "rec:ai:",
	}
}

func (c *redisRecommendationCache) Get(ctx context.Context, key string) (domain.AIRecommendation, bool, error) {
	if c == nil || c.client == nil || strings.TrimSpace(key) == "" {
		return domain.AIRecommendation{}, false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.AIRecommendation{}, false, nil
	}
	if err != nil {
		return domain.AIRecommendation{}, false, err
	}

	var rec domain.AIRecommendation
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.AIRecommendation{}, false, err
	}
	return rec, true, nil
}

func (c *redisRecommendationCache) Set(ctx context.Context, key string, rec domain.AIRecommendation) error {
	if c == nil || c.client == nil || strings.TrimSpace(key) == "" {
		return nil
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return c.client.Set(ctx, c.prefix+key, payload, c.ttl).Err()
}

// AnswersCacheKey normaliza las respuestas (orden de preguntas y de opciones) y devuelve un hash estable.
func AnswersCacheKey(answers []domain.UserAnswer) string {
	normalized := make([]domain.UserAnswer, 0, len(answers))
	for _, a := range answers {
		opts := slices.Clone(a.SelectedOptions)
		slices.Sort(opts)
		normalized = append(normalized, domain.UserAnswer{
			QuestionID:      strings.TrimSpace(a.QuestionID),
			SelectedOptions: opts,
		})
	}
	slices.SortFunc(normalized, func(a, b domain.UserAnswer) int {
		if c := strings.Compare(a.QuestionID, b.QuestionID); c != 0 {
			return c
		}
		return slices.Compare(a.SelectedOptions, b.SelectedOptions)
	})

	payload, _ := json.Marshal(normalized)
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
