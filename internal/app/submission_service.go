package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"carbon-quiz-service/internal/domain"
	"carbon-quiz-service/internal/records"
	"carbon-quiz-service/internal/scoring"
)

// SubmissionService scores completed runs and persists them.
type SubmissionService struct {
	engine *scoring.Engine
	store  SubmissionStore
	now    func() time.Time
}

func NewSubmissionService(engine *scoring.Engine, store SubmissionStore) *SubmissionService {
	return NewSubmissionServiceWithClock(engine, store, time.Now)
}

// NewSubmissionServiceWithClock is test-only for deterministic submission timestamps.
func NewSubmissionServiceWithClock(engine *scoring.Engine, store SubmissionStore, now func() time.Time) *SubmissionService {
	return &SubmissionService{engine: engine, store: store, now: now}
}

// Submit recomputes the result from the raw answers and writes the signup and
// result rows in one transaction.
func (s *SubmissionService) Submit(ctx context.Context, user domain.UserInfo, answers []domain.Answer) (domain.Submission, error) {
	user = normalizeUser(user)
	if user.Email == "" {
		return domain.Submission{}, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}

	result, err := s.engine.Score(answers)
	if err != nil {
		return domain.Submission{}, err
	}

	submittedAt := s.now().UTC()
	rec, err := records.Flatten(user, result, answers, submittedAt)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	var id int64
	err = s.store.InTx(ctx, func(w SubmissionWriter) error {
		if _, err := w.InsertSignup(ctx, domain.Signup{User: user, CreatedAt: submittedAt}); err != nil {
			return err
		}
		id, err = w.InsertResult(ctx, rec)
		return err
	})
	if err != nil {
		return domain.Submission{}, err
	}

	log.Printf("stored result %d: %s %.1f%%", id, result.Tier.Name, result.Percentage)
	return domain.Submission{
		ID:          id,
		User:        user,
		Result:      result,
		Answers:     answers,
		SubmittedAt: submittedAt,
	}, nil
}

func normalizeUser(u domain.UserInfo) domain.UserInfo {
	return domain.UserInfo{
		Email:   strings.TrimSpace(u.Email),
		Name:    strings.TrimSpace(u.Name),
		Company: strings.TrimSpace(u.Company),
		Role:    strings.TrimSpace(u.Role),
	}
}
