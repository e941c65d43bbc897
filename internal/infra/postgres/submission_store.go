package postgres

import (
	"context"
	"errors"
	"fmt"

	"carbon-quiz-service/internal/app"
	"carbon-quiz-service/internal/domain"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// SubmissionStore persists signups and results in Postgres.
type SubmissionStore struct {
	pool *pgxpool.Pool
}

func NewSubmissionStore(pool *pgxpool.Pool) *SubmissionStore {
	return &SubmissionStore{pool: pool}
}

const resultColumns = `id, email, COALESCE(name, ''), COALESCE(company, ''), COALESCE(role, ''),
	total_score, max_score, percentage,
	COALESCE(tier_name, ''), COALESCE(tier_range, ''), COALESCE(tier_color, ''), COALESCE(tier_emoji, ''),
	COALESCE(section_scores_json, ''), COALESCE(recommendations_json, ''), COALESCE(answers_json, ''),
	submitted_at`

type txWriter struct {
	tx pgx.Tx
}

func (w txWriter) InsertSignup(ctx context.Context, signup domain.Signup) (int64, error) {
	var id int64
	err := w.tx.QueryRow(ctx,
		`INSERT INTO newsletter_signups (email, name, company, role, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		signup.User.Email, nullable(signup.User.Name), nullable(signup.User.Company), nullable(signup.User.Role), signup.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, unavailable("insert signup", err)
	}
	return id, nil
}

func (w txWriter) InsertResult(ctx context.Context, rec domain.Record) (int64, error) {
	var id int64
	err := w.tx.QueryRow(ctx,
		`INSERT INTO quiz_results (email, name, company, role, total_score, max_score, percentage,
		   tier_name, tier_range, tier_color, tier_emoji,
		   section_scores_json, recommendations_json, answers_json, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`,
		rec.Email, nullable(rec.Name), nullable(rec.Company), nullable(rec.Role),
		rec.TotalScore, rec.MaxScore, rec.Percentage,
		nullable(rec.TierName), nullable(rec.TierRange), nullable(rec.TierColor), nullable(rec.TierEmoji),
		nullable(rec.SectionScoresJSON), nullable(rec.RecommendationsJSON), nullable(rec.AnswersJSON),
		rec.SubmittedAt,
	).Scan(&id)
	if err != nil {
		return 0, unavailable("insert result", err)
	}
	return id, nil
}

func (s *SubmissionStore) InTx(ctx context.Context, fn func(w app.SubmissionWriter) error) error {
	var fnErr error
	err := s.pool.BeginFunc(ctx, func(tx pgx.Tx) error {
		fnErr = fn(txWriter{tx: tx})
		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return unavailable("transaction", err)
	}
	return nil
}

func (s *SubmissionStore) ListAll(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+resultColumns+` FROM quiz_results ORDER BY submitted_at DESC, id DESC`)
	if err != nil {
		return nil, unavailable("list results", err)
	}
	defer rows.Close()

	var out []domain.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, unavailable("scan result", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("list results", err)
	}
	return out, nil
}

func (s *SubmissionStore) GetByID(ctx context.Context, id int64) (domain.Record, error) {
	rec, err := scanRecord(s.pool.QueryRow(ctx, `SELECT `+resultColumns+` FROM quiz_results WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Record{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Record{}, unavailable("get result", err)
	}
	return rec, nil
}

func (s *SubmissionStore) CountSignups(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM newsletter_signups`).Scan(&n); err != nil {
		return 0, unavailable("count signups", err)
	}
	return n, nil
}

func (s *SubmissionStore) CountResultsAndAvgPercentage(ctx context.Context) (int, float64, error) {
	var n int
	var avg float64
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*), COALESCE(AVG(percentage), 0) FROM quiz_results`).Scan(&n, &avg)
	if err != nil {
		return 0, 0, unavailable("count results", err)
	}
	return n, avg, nil
}

func scanRecord(row pgx.Row) (domain.Record, error) {
	var rec domain.Record
	err := row.Scan(
		&rec.ID, &rec.Email, &rec.Name, &rec.Company, &rec.Role,
		&rec.TotalScore, &rec.MaxScore, &rec.Percentage,
		&rec.TierName, &rec.TierRange, &rec.TierColor, &rec.TierEmoji,
		&rec.SectionScoresJSON, &rec.RecommendationsJSON, &rec.AnswersJSON,
		&rec.SubmittedAt,
	)
	if err != nil {
		return domain.Record{}, err
	}
	rec.SubmittedAt = rec.SubmittedAt.UTC()
	return rec, nil
}

// nullable stores empty strings as NULL, the way rows written by older clients look.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, op, err)
}
