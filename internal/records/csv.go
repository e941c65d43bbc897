package records

import (
	"io"
	"strconv"
	"strings"

	"carbon-quiz-service/internal/domain"
)

var baseColumns = []string{
	"email",
	"name",
	"company",
	"role",
	"total_score",
	"max_score",
	"percentage",
	"tier_name",
	"submitted_at",
}

var fullColumns = []string{"section_scores_json", "recommendations_json", "answers_json"}

// Columns returns the export header for the requested detail level.
func Columns(full bool) []string {
	cols := append([]string(nil), baseColumns...)
	if full {
		cols = append(cols, fullColumns...)
	}
	return cols
}

// WriteCSV writes an unquoted header row followed by one row per record, in the
// given order. Every value is quoted with embedded quotes doubled and missing
// values written as empty strings. Rows are separated by a single '\n'.
func WriteCSV(w io.Writer, recs []domain.Record, full bool) error {
	cols := Columns(full)
	var b strings.Builder
	b.WriteString(strings.Join(cols, ","))
	for _, rec := range recs {
		b.WriteByte('\n')
		for i, col := range cols {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field(rec, col), `"`, `""`))
			b.WriteByte('"')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func field(rec domain.Record, col string) string {
	switch col {
	case "email":
		return rec.Email
	case "name":
		return rec.Name
	case "company":
		return rec.Company
	case "role":
		return rec.Role
	case "total_score":
		return optInt(rec.TotalScore)
	case "max_score":
		return optInt(rec.MaxScore)
	case "percentage":
		if rec.Percentage == nil {
			return ""
		}
		return strconv.FormatFloat(*rec.Percentage, 'f', -1, 64)
	case "tier_name":
		return rec.TierName
	case "submitted_at":
		if rec.SubmittedAt.IsZero() {
			return ""
		}
		return domain.FormatTimestamp(rec.SubmittedAt)
	case "section_scores_json":
		return rec.SectionScoresJSON
	case "recommendations_json":
		return rec.RecommendationsJSON
	case "answers_json":
		return rec.AnswersJSON
	}
	return ""
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
