// Package scoring turns raw answers into scores, tiers and recommendations.
package scoring

import (
	"fmt"
	"time"

	"carbon-quiz-service/internal/domain"
)

// Engine scores complete quiz runs against a fixed question bank.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	bank       domain.Bank
	sectionIdx map[string]int
	questionOf map[int]domain.Question
	now        func() time.Time
}

func NewEngine(bank domain.Bank) *Engine {
	return NewEngineWithClock(bank, time.Now)
}

// NewEngineWithClock allows deterministic result timestamps in tests.
func NewEngineWithClock(bank domain.Bank, now func() time.Time) *Engine {
	e := &Engine{
		bank:       bank,
		sectionIdx: make(map[string]int, len(bank.Sections)),
		questionOf: make(map[int]domain.Question, len(bank.Questions)),
		now:        now,
	}
	for i, s := range bank.Sections {
		e.sectionIdx[s.ID] = i
	}
	for _, q := range bank.Questions {
		e.questionOf[q.ID] = q
	}
	return e
}

// Bank returns the question bank the engine scores against.
func (e *Engine) Bank() domain.Bank {
	return e.bank
}

// Score computes the result of a complete run: exactly one answer per question,
// every score in [1,5]. Anything else fails with domain.ErrInvalidInput.
func (e *Engine) Score(answers []domain.Answer) (domain.QuizResult, error) {
	if err := e.validate(answers); err != nil {
		return domain.QuizResult{}, err
	}

	total := 0
	for _, a := range answers {
		total += a.Score
	}
	maxScore := domain.MaxAnswerScore * len(e.bank.Questions)
	pct := percentage(total, maxScore)

	sectionScores := make(map[string]domain.SectionScore, len(e.bank.Sections))
	order := make([]string, 0, len(e.bank.Sections))
	for _, s := range e.bank.Sections {
		sectionScores[s.ID] = e.sectionScore(s, answers)
		order = append(order, s.ID)
	}

	return domain.QuizResult{
		TotalScore:      total,
		MaxScore:        maxScore,
		Percentage:      pct,
		Tier:            Classify(pct),
		SectionScores:   sectionScores,
		Recommendations: Recommend(pct, sectionScores, order),
		Timestamp:       e.now(),
	}, nil
}

// SectionProgress scores one section from a possibly partial answer set. Answers
// to questions of other sections are ignored.
func (e *Engine) SectionProgress(sectionID string, answers []domain.Answer) (domain.SectionScore, error) {
	idx, ok := e.sectionIdx[sectionID]
	if !ok {
		return domain.SectionScore{}, fmt.Errorf("%w: unknown section %q", domain.ErrInvalidInput, sectionID)
	}
	return e.sectionScore(e.bank.Sections[idx], answers), nil
}

func (e *Engine) sectionScore(s domain.Section, answers []domain.Answer) domain.SectionScore {
	questions := e.bank.QuestionsIn(s.ID)
	inSection := make(map[int]struct{}, len(questions))
	for _, q := range questions {
		inSection[q.ID] = struct{}{}
	}

	score := 0
	for _, a := range answers {
		if _, ok := inSection[a.QuestionID]; ok {
			score += a.Score
		}
	}
	maxScore := domain.MaxAnswerScore * len(questions)
	pct := percentage(score, maxScore)
	return domain.SectionScore{
		SectionID:   s.ID,
		SectionName: s.Name,
		Score:       score,
		MaxScore:    maxScore,
		Percentage:  pct,
		Tier:        Classify(pct),
	}
}

func (e *Engine) validate(answers []domain.Answer) error {
	seen := make(map[int]struct{}, len(answers))
	for _, a := range answers {
		if err := e.ValidateAnswer(a); err != nil {
			return err
		}
		if _, dup := seen[a.QuestionID]; dup {
			return fmt.Errorf("%w: duplicate answer for question %d", domain.ErrInvalidInput, a.QuestionID)
		}
		seen[a.QuestionID] = struct{}{}
	}
	if len(seen) != len(e.bank.Questions) {
		return fmt.Errorf("%w: %d of %d questions answered", domain.ErrInvalidInput, len(seen), len(e.bank.Questions))
	}
	return nil
}

// ValidateAnswer checks that a references a known question and carries a score in range.
func (e *Engine) ValidateAnswer(a domain.Answer) error {
	if _, ok := e.questionOf[a.QuestionID]; !ok {
		return fmt.Errorf("%w: unknown question %d", domain.ErrInvalidInput, a.QuestionID)
	}
	if a.Score < domain.MinAnswerScore || a.Score > domain.MaxAnswerScore {
		return fmt.Errorf("%w: score %d for question %d out of range", domain.ErrInvalidInput, a.Score, a.QuestionID)
	}
	return nil
}

func percentage(score, maxScore int) float64 {
	if maxScore == 0 {
		return 0
	}
	return float64(score) / float64(maxScore) * 100
}
