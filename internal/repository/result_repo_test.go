package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rain-scent/internal/domain"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = r.values[i].(uuid.UUID)
		case *[]byte:
			*p = r.values[i].([]byte)
		case *string:
			*p = r.values[i].(string)
		case *time.Time:
			*p = r.values[i].(time.Time)
		default:
			return errors.New("unexpected scan target")
		}
	}
	return nil
}

type fakeQuerier struct {
	execSQL  string
	execArgs []any
	execErr  error
	row      pgx.Row
	queried  bool
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execSQL = sql
	f.execArgs = args
	return pgconn.NewCommandTag("INSERT 0 1"), f.execErr
}

func (f *fakeQuerier) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	f.queried = true
	return f.row
}

func sampleResult() domain.QuizResult {
	return domain.QuizResult{
		ID:      uuid.NewString(),
		Answers: []domain.UserAnswer{{QuestionID: "q1", SelectedOptions: []string{"night_city"}}},
		Recommendation: domain.AIRecommendation{
			PoeticMessage:      "비",
			TopRecommendations: []domain.AIPerfumeMatch{{Perfume: domain.Perfume{ID: "urban-night-rain"}, MatchScore: 80}},
		},
		Source:    domain.SourceFallback,
		CreatedAt: time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPgResultRepositoryCreate(t *testing.T) {
	q := &fakeQuerier{}
	repo := NewPgResultRepository(q)
	res := sampleResult()

	require.NoError(t, repo.Create(context.Background(), res))
	require.Len(t, q.execArgs, 5)
	assert.Equal(t, uuid.MustParse(res.ID), q.execArgs[0])
	assert.JSONEq(t, `[{"questionId":"q1","selectedOptions":["night_city"]}]`, string(q.execArgs[1].([]byte)))
	assert.Equal(t, domain.SourceFallback, q.execArgs[3])
	assert.Contains(t, q.execSQL, "INSERT INTO quiz_results")
}

func TestPgResultRepositoryCreateRejectsBadID(t *testing.T) {
	q := &fakeQuerier{}
	res := sampleResult()
	res.ID = "not-a-uuid"

	err := NewPgResultRepository(q).Create(context.Background(), res)
	require.Error(t, err)
	assert.Empty(t, q.execSQL)
}

func TestPgResultRepositoryGetByID(t *testing.T) {
	res := sampleResult()
	answers, _ := json.Marshal(res.Answers)
	rec, _ := json.Marshal(res.Recommendation)
	q := &fakeQuerier{row: fakeRow{values: []any{uuid.MustParse(res.ID), answers, rec, res.Source, res.CreatedAt}}}

	got, err := NewPgResultRepository(q).GetByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, res, got)
}

func TestPgResultRepositoryGetByIDNotFound(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
	_, err := NewPgResultRepository(q).GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	q = &fakeQuerier{}
	_, err = NewPgResultRepository(q).GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.False(t, q.queried)
}
