// Package sqlite stores submissions in a single SQLite file through gorm. The
// tables keep the newsletter_signups/quiz_results layout of earlier dashboard
// databases so existing files open as is.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"carbon-quiz-service/internal/app"
	"carbon-quiz-service/internal/domain"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type signupRow struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Email         string `gorm:"not null"`
	Name          *string
	Company       *string
	Role          *string
	CreatedAtText string `gorm:"column:created_at"`
}

func (signupRow) TableName() string { return "newsletter_signups" }

type resultRow struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	Email               string `gorm:"not null"`
	Name                *string
	Company             *string
	Role                *string
	TotalScore          *int
	MaxScore            *int
	Percentage          *float64
	TierName            *string
	TierRange           *string
	TierColor           *string
	TierEmoji           *string
	SectionScoresJSON   *string `gorm:"column:section_scores_json"`
	RecommendationsJSON *string `gorm:"column:recommendations_json"`
	AnswersJSON         *string `gorm:"column:answers_json"`
	SubmittedAt         string  `gorm:"column:submitted_at;index"`
}

func (resultRow) TableName() string { return "quiz_results" }

// Open opens (creating if needed) the database at path and migrates the schema.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// one writer at a time
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&signupRow{}, &resultRow{}); err != nil {
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return db, nil
}

// SubmissionStore implements app.SubmissionStore on gorm.
type SubmissionStore struct {
	db *gorm.DB
}

func NewSubmissionStore(db *gorm.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

type txWriter struct {
	tx *gorm.DB
}

func (w txWriter) InsertSignup(_ context.Context, signup domain.Signup) (int64, error) {
	row := signupRow{
		Email:         signup.User.Email,
		Name:          nullable(signup.User.Name),
		Company:       nullable(signup.User.Company),
		Role:          nullable(signup.User.Role),
		CreatedAtText: domain.FormatTimestamp(signup.CreatedAt),
	}
	if err := w.tx.Create(&row).Error; err != nil {
		return 0, unavailable("insert signup", err)
	}
	return row.ID, nil
}

func (w txWriter) InsertResult(_ context.Context, rec domain.Record) (int64, error) {
	row := resultRow{
		Email:               rec.Email,
		Name:                nullable(rec.Name),
		Company:             nullable(rec.Company),
		Role:                nullable(rec.Role),
		TotalScore:          rec.TotalScore,
		MaxScore:            rec.MaxScore,
		Percentage:          rec.Percentage,
		TierName:            nullable(rec.TierName),
		TierRange:           nullable(rec.TierRange),
		TierColor:           nullable(rec.TierColor),
		TierEmoji:           nullable(rec.TierEmoji),
		SectionScoresJSON:   nullable(rec.SectionScoresJSON),
		RecommendationsJSON: nullable(rec.RecommendationsJSON),
		AnswersJSON:         nullable(rec.AnswersJSON),
		SubmittedAt:         domain.FormatTimestamp(rec.SubmittedAt),
	}
	if err := w.tx.Create(&row).Error; err != nil {
		return 0, unavailable("insert result", err)
	}
	return row.ID, nil
}

func (s *SubmissionStore) InTx(ctx context.Context, fn func(w app.SubmissionWriter) error) error {
	var fnErr error
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
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
	var rows []resultRow
	if err := s.db.WithContext(ctx).Order("submitted_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, unavailable("list results", err)
	}
	out := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.record())
	}
	return out, nil
}

func (s *SubmissionStore) GetByID(ctx context.Context, id int64) (domain.Record, error) {
	var row resultRow
	err := s.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Record{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Record{}, unavailable("get result", err)
	}
	return row.record(), nil
}

func (s *SubmissionStore) CountSignups(ctx context.Context) (int, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&signupRow{}).Count(&n).Error; err != nil {
		return 0, unavailable("count signups", err)
	}
	return int(n), nil
}

func (s *SubmissionStore) CountResultsAndAvgPercentage(ctx context.Context) (int, float64, error) {
	var agg struct {
		Count int64
		Avg   *float64
	}
	err := s.db.WithContext(ctx).Model(&resultRow{}).
		Select("COUNT(*) AS count, AVG(percentage) AS avg").
		Scan(&agg).Error
	if err != nil {
		return 0, 0, unavailable("count results", err)
	}
	if agg.Avg == nil {
		return int(agg.Count), 0, nil
	}
	return int(agg.Count), *agg.Avg, nil
}

func (r resultRow) record() domain.Record {
	return domain.Record{
		ID:                  r.ID,
		Email:               r.Email,
		Name:                deref(r.Name),
		Company:             deref(r.Company),
		Role:                deref(r.Role),
		TotalScore:          r.TotalScore,
		MaxScore:            r.MaxScore,
		Percentage:          r.Percentage,
		TierName:            deref(r.TierName),
		TierRange:           deref(r.TierRange),
		TierColor:           deref(r.TierColor),
		TierEmoji:           deref(r.TierEmoji),
		SectionScoresJSON:   deref(r.SectionScoresJSON),
		RecommendationsJSON: deref(r.RecommendationsJSON),
		AnswersJSON:         deref(r.AnswersJSON),
		SubmittedAt:         parseTimestamp(r.ID, r.SubmittedAt),
	}
}

// timestamp layouts seen in stored rows, newest writer first
var timestampLayouts = []string{
	domain.TimestampLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
}

func parseTimestamp(id int64, raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	log.Printf("sqlite: result %d has unparseable submitted_at %q", id, raw)
	return time.Time{}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, op, err)
}
