// Package records converts between scored quiz runs and their flattened,
// persisted form. Serialized columns are validated against JSON schemas on
// the way back in so malformed rows never reach business logic.
package records

import (
	"encoding/json"
	"fmt"
	"time"

	"carbon-quiz-service/internal/domain"
	"carbon-quiz-service/internal/scoring"
)

// Flatten builds the persisted record for a scored run.
func Flatten(user domain.UserInfo, result domain.QuizResult, answers []domain.Answer, submittedAt time.Time) (domain.Record, error) {
	sections := result.SectionScores
	if sections == nil {
		sections = map[string]domain.SectionScore{}
	}
	recs := result.Recommendations
	if recs == nil {
		recs = []string{}
	}
	if answers == nil {
		answers = []domain.Answer{}
	}

	sectionsJSON, err := json.Marshal(sections)
	if err != nil {
		return domain.Record{}, fmt.Errorf("marshal section scores: %w", err)
	}
	recsJSON, err := json.Marshal(recs)
	if err != nil {
		return domain.Record{}, fmt.Errorf("marshal recommendations: %w", err)
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return domain.Record{}, fmt.Errorf("marshal answers: %w", err)
	}

	total, maxScore, pct := result.TotalScore, result.MaxScore, result.Percentage
	return domain.Record{
		Email:               user.Email,
		Name:                user.Name,
		Company:             user.Company,
		Role:                user.Role,
		TotalScore:          &total,
		MaxScore:            &maxScore,
		Percentage:          &pct,
		TierName:            result.Tier.Name,
		TierRange:           result.Tier.Range,
		TierColor:           result.Tier.Color,
		TierEmoji:           result.Tier.Emoji,
		SectionScoresJSON:   string(sectionsJSON),
		RecommendationsJSON: string(recsJSON),
		AnswersJSON:         string(answersJSON),
		SubmittedAt:         submittedAt,
	}, nil
}

// SectionScores decodes the section-score column. An empty column decodes to an empty map.
func SectionScores(raw string) (map[string]domain.SectionScore, error) {
	out := map[string]domain.SectionScore{}
	if err := decode(sectionScoresSchema, raw, "{}", &out); err != nil {
		return nil, err
	}
	// Lower bounds are not serialized.
	for id, s := range out {
		if t, ok := scoring.TierByName(s.Tier.Name); ok {
			s.Tier.Min = t.Min
			out[id] = s
		}
	}
	return out, nil
}

// Recommendations decodes the recommendation column. An empty column decodes to an empty list.
func Recommendations(raw string) ([]string, error) {
	out := []string{}
	if err := decode(recommendationsSchema, raw, "[]", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Answers decodes the answer column. An empty column decodes to an empty list.
func Answers(raw string) ([]domain.Answer, error) {
	out := []domain.Answer{}
	if err := decode(answersSchema, raw, "[]", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decode(s *schema, raw, empty string, dst any) error {
	if raw == "" {
		raw = empty
	}
	if err := validate(s, []byte(raw)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrMalformedRecord, s.Name, err)
	}
	return nil
}

// Detail decodes every serialized column of rec. Any malformed column fails the whole decode.
func Detail(rec domain.Record) (domain.SubmissionDetail, error) {
	sections, err := SectionScores(rec.SectionScoresJSON)
	if err != nil {
		return domain.SubmissionDetail{}, err
	}
	recs, err := Recommendations(rec.RecommendationsJSON)
	if err != nil {
		return domain.SubmissionDetail{}, err
	}
	answers, err := Answers(rec.AnswersJSON)
	if err != nil {
		return domain.SubmissionDetail{}, err
	}
	return domain.SubmissionDetail{
		ID:              rec.ID,
		Email:           rec.Email,
		Name:            rec.Name,
		Company:         rec.Company,
		Role:            rec.Role,
		Percentage:      rec.Percentage,
		TierName:        rec.TierName,
		SubmittedAt:     domain.FormatTimestamp(rec.SubmittedAt),
		SectionScores:   sections,
		Recommendations: recs,
		Answers:         answers,
	}, nil
}

// Recent builds the dashboard listing row for rec.
func Recent(rec domain.Record) domain.RecentResult {
	return domain.RecentResult{
		ID:          rec.ID,
		Email:       rec.Email,
		Name:        rec.Name,
		Company:     rec.Company,
		Role:        rec.Role,
		Percentage:  rec.Percentage,
		TierName:    rec.TierName,
		SubmittedAt: domain.FormatTimestamp(rec.SubmittedAt),
	}
}
