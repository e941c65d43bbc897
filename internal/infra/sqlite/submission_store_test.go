package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"carbon-quiz-service/internal/app"
	"carbon-quiz-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SubmissionStore {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "quiz.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewSubmissionStore(db)
}

func insert(t *testing.T, store *SubmissionStore, rec domain.Record) int64 {
	t.Helper()
	ctx := context.Background()
	var id int64
	err := store.InTx(ctx, func(w app.SubmissionWriter) error {
		if _, err := w.InsertSignup(ctx, domain.Signup{User: domain.UserInfo{Email: rec.Email}, CreatedAt: rec.SubmittedAt}); err != nil {
			return err
		}
		var err error
		id, err = w.InsertResult(ctx, rec)
		return err
	})
	require.NoError(t, err)
	return id
}

func TestSubmissionStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	at := time.Date(2025, 2, 3, 4, 5, 6, 789_000_000, time.UTC)
	total, maxScore, pct := 150, 225, 66.66666666666667

	id := insert(t, store, domain.Record{
		Email:               "a@x.com",
		Company:             "Acme",
		TotalScore:          &total,
		MaxScore:            &maxScore,
		Percentage:          &pct,
		TierName:            "Achiever",
		SectionScoresJSON:   `{}`,
		RecommendationsJSON: `["a"]`,
		AnswersJSON:         `[]`,
		SubmittedAt:         at,
	})

	rec, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Acme", rec.Company)
	assert.Equal(t, "", rec.Name)
	require.NotNil(t, rec.TotalScore)
	assert.Equal(t, 150, *rec.TotalScore)
	assert.Equal(t, pct, *rec.Percentage)
	assert.Equal(t, `["a"]`, rec.RecommendationsJSON)
	assert.True(t, at.Equal(rec.SubmittedAt))

	_, err = store.GetByID(ctx, id+100)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmissionStoreOrderingAndAggregates(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	n, avg, err := store.CountResultsAndAvgPercentage(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, avg)

	for i, p := range []float64{30, 90, 60} {
		p := p
		insert(t, store, domain.Record{Email: "u@x.com", Percentage: &p, SubmittedAt: base.Add(time.Duration(i) * time.Hour)})
	}

	rows, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 60.0, *rows[0].Percentage)
	assert.Equal(t, 30.0, *rows[2].Percentage)

	signups, err := store.CountSignups(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, signups)

	n, avg, err = store.CountResultsAndAvgPercentage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.InDelta(t, 60.0, avg, 1e-9)
}

func TestSubmissionStoreRollsBack(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.InTx(ctx, func(w app.SubmissionWriter) error {
		if _, err := w.InsertSignup(ctx, domain.Signup{User: domain.UserInfo{Email: "a@x.com"}}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := store.CountSignups(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSubmissionStoreReadsLegacyRows(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.db.Exec(
		`INSERT INTO quiz_results (email, percentage, submitted_at) VALUES (?, NULL, ?), (?, NULL, ?)`,
		"old@x.com", "2024-05-06 07:08:09", "broken@x.com", "yesterday",
	).Error)

	rows, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byEmail := map[string]domain.Record{}
	for _, r := range rows {
		byEmail[r.Email] = r
	}
	assert.Equal(t, time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC), byEmail["old@x.com"].SubmittedAt)
	assert.True(t, byEmail["broken@x.com"].SubmittedAt.IsZero())
	assert.Nil(t, byEmail["old@x.com"].Percentage)
	assert.Nil(t, byEmail["old@x.com"].TotalScore)
}
