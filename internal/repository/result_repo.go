package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"rain-scent/internal/domain"
)

type ResultRepository interface {
	Create(ctx context.Context, result domain.QuizResult) error
	GetByID(ctx context.Context, id string) (domain.QuizResult, error)
}

// pgxQuerier es el subconjunto de pgxpool.Pool que usa el repositorio.
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgResultRepository struct {
	pool pgxQuerier
}

func NewPgResultRepository(pool pgxQuerier) *PgResultRepository {
	return &PgResultRepository{pool: pool}
}

func (r *PgResultRepository) Create(ctx context.Context, result domain.QuizResult) error {
	id, err := uuid.Parse(result.ID)
	if err != nil {
		return fmt.Errorf("invalid result id: %w", err)
	}
	answers, err := json.Marshal(result.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	recommendation, err := json.Marshal(result.Recommendation)
	if err != nil {
		return fmt.Errorf("marshal recommendation: %w", err)
	}

	const query = `
		INSERT INTO quiz_results (id, answers, recommendation, source, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.pool.Exec(ctx, query, id, answers, recommendation, result.Source, result.CreatedAt)
	return err
}

// GetByID devuelve pgx.ErrNoRows si el resultado no existe o el id no es un uuid.
func (r *PgResultRepository) GetByID(ctx context.Context, id string) (domain.QuizResult, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return domain.QuizResult{}, pgx.ErrNoRows
	}

	const query = `
		SELECT id, answers, recommendation, source, created_at
		FROM quiz_results
		WHERE id = $1
	`
	var (
		result         domain.QuizResult
		rowID          uuid.UUID
		answers        []byte
		recommendation []byte
	)
	if err := r.pool.QueryRow(ctx, query, parsed).Scan(&rowID, &answers, &recommendation, &result.Source, &result.CreatedAt); err != nil {
		return domain.QuizResult{}, err
	}
	result.ID = rowID.String()
	if err := json.Unmarshal(answers, &result.Answers); err != nil {
		return domain.QuizResult{}, fmt.Errorf("unmarshal answers: %w", err)
	}
	if err := json.Unmarshal(recommendation, &result.Recommendation); err != nil {
		return domain.QuizResult{}, fmt.Errorf("unmarshal recommendation: %w", err)
	}
	return result, nil
}
