package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"carbon-quiz-service/internal/domain"
	"carbon-quiz-service/internal/scoring"
	"github.com/google/uuid"
)

// SectionCompletion is reported when an answer finishes a section.
type SectionCompletion struct {
	SectionID   string  `json:"sectionId"`
	SectionName string  `json:"sectionName"`
	Percentage  float64 `json:"percentage"`
	Message     string  `json:"message"`
}

// AnswerOutcome describes what happened after one answer was recorded.
type AnswerOutcome struct {
	Progress  domain.Progress    `json:"progress"`
	Next      *domain.Question   `json:"next,omitempty"`
	Completed *SectionCompletion `json:"sectionComplete,omitempty"`
	// Submission is set once the last question has been answered and stored.
	Submission *domain.Submission `json:"submission,omitempty"`
}

// RunService drives a quiz run question by question, checkpointing progress
// after every answer so an interrupted run can be resumed.
type RunService struct {
	engine      *scoring.Engine
	progress    ProgressStore
	submissions *SubmissionService
	now         func() time.Time
}

func NewRunService(engine *scoring.Engine, progress ProgressStore, submissions *SubmissionService) *RunService {
	return NewRunServiceWithClock(engine, progress, submissions, time.Now)
}

// NewRunServiceWithClock is test-only for deterministic timestamps.
func NewRunServiceWithClock(engine *scoring.Engine, progress ProgressStore, submissions *SubmissionService, now func() time.Time) *RunService {
	return &RunService{engine: engine, progress: progress, submissions: submissions, now: now}
}

// Start opens a new run for user.
func (s *RunService) Start(ctx context.Context, user domain.UserInfo) (domain.Progress, error) {
	user = normalizeUser(user)
	if user.Email == "" {
		return domain.Progress{}, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	p := domain.Progress{
		Version: domain.ProgressVersion,
		ID:      uuid.NewString(),
		User:    user,
		Answers: []domain.Answer{},
		SavedAt: s.now(),
	}
	if err := s.progress.Save(ctx, p); err != nil {
		return domain.Progress{}, err
	}
	return p, nil
}

// Resume loads a saved run. Saved records of another layout version or with an
// inconsistent answer count are discarded and reported as not found.
func (s *RunService) Resume(ctx context.Context, id string) (domain.Progress, error) {
	p, err := s.progress.Load(ctx, id)
	if err != nil {
		return domain.Progress{}, err
	}
	if p.Version != domain.ProgressVersion || p.CurrentIndex != len(p.Answers) || p.CurrentIndex > len(s.engine.Bank().Questions) {
		_ = s.progress.Clear(ctx, id)
		return domain.Progress{}, domain.ErrProgressNotFound
	}
	return p, nil
}

// Current returns the question p is waiting on, false once every question is answered.
func (s *RunService) Current(p domain.Progress) (domain.Question, bool) {
	questions := s.engine.Bank().Questions
	if p.CurrentIndex >= len(questions) {
		return domain.Question{}, false
	}
	return questions[p.CurrentIndex], true
}

// TotalQuestions is the length of a complete run.
func (s *RunService) TotalQuestions() int {
	return len(s.engine.Bank().Questions)
}

// Answer records score for the current question of run id.
func (s *RunService) Answer(ctx context.Context, id string, score int) (AnswerOutcome, error) {
	p, err := s.Resume(ctx, id)
	if err != nil {
		return AnswerOutcome{}, err
	}
	q, ok := s.Current(p)
	if !ok {
		return s.finish(ctx, p)
	}

	answer := domain.Answer{QuestionID: q.ID, Score: score, Timestamp: s.now()}
	if err := s.engine.ValidateAnswer(answer); err != nil {
		return AnswerOutcome{}, err
	}
	p.Answers = append(p.Answers, answer)
	p.CurrentIndex++
	p.SavedAt = s.now()
	if err := s.progress.Save(ctx, p); err != nil {
		return AnswerOutcome{}, err
	}

	next, more := s.Current(p)
	if !more {
		return s.finish(ctx, p)
	}
	out := AnswerOutcome{Progress: p, Next: &next}
	if next.SectionID != q.SectionID {
		completed, err := s.sectionCompletion(q.SectionID, p.Answers)
		if err != nil {
			return AnswerOutcome{}, err
		}
		out.Completed = &completed
	}
	return out, nil
}

// Finish submits a fully answered run. It is retried by Answer when an earlier
// attempt to store the result failed.
func (s *RunService) Finish(ctx context.Context, id string) (AnswerOutcome, error) {
	p, err := s.Resume(ctx, id)
	if err != nil {
		return AnswerOutcome{}, err
	}
	if _, pending := s.Current(p); pending {
		return AnswerOutcome{}, fmt.Errorf("%w: %d of %d questions answered", domain.ErrInvalidInput, len(p.Answers), s.TotalQuestions())
	}
	return s.finish(ctx, p)
}

func (s *RunService) finish(ctx context.Context, p domain.Progress) (AnswerOutcome, error) {
	sub, err := s.submissions.Submit(ctx, p.User, p.Answers)
	if err != nil {
		return AnswerOutcome{}, err
	}
	if err := s.progress.Clear(ctx, p.ID); err != nil && !errors.Is(err, domain.ErrProgressNotFound) {
		return AnswerOutcome{}, err
	}
	return AnswerOutcome{Progress: p, Submission: &sub}, nil
}

// Discard drops a saved run.
func (s *RunService) Discard(ctx context.Context, id string) error {
	return s.progress.Clear(ctx, id)
}

func (s *RunService) sectionCompletion(sectionID string, answers []domain.Answer) (SectionCompletion, error) {
	score, err := s.engine.SectionProgress(sectionID, answers)
	if err != nil {
		return SectionCompletion{}, err
	}
	return SectionCompletion{
		SectionID:   score.SectionID,
		SectionName: score.SectionName,
		Percentage:  score.Percentage,
		Message:     scoring.SectionCompletionMessage(score.SectionName, score.Percentage),
	}, nil
}

// ValidRunID reports whether id looks like a run id issued by Start.
func ValidRunID(id string) bool {
	_, err := uuid.Parse(strings.TrimSpace(id))
	return err == nil
}
