package domain

import "time"

// TimestampLayout is the UTC ISO-8601 form used for persisted and exported timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Section groups related questions of the bank.
type Section struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// Question is a single statement rated by the respondent on a 1-5 scale.
type Question struct {
	ID          int    `json:"id"`
	SectionID   string `json:"sectionId"`
	Statement   string `json:"statement"`
	Explanation string `json:"explanation,omitempty"`
	Category    string `json:"category"`
}

// Bank is the ordered question bank together with the sections partitioning it.
type Bank struct {
	Sections  []Section  `json:"sections"`
	Questions []Question `json:"questions"`
}

// Section returns the section with the given id.
func (b Bank) Section(id string) (Section, bool) {
	for _, s := range b.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// QuestionsIn returns the questions of one section in bank order.
func (b Bank) QuestionsIn(sectionID string) []Question {
	var out []Question
	for _, q := range b.Questions {
		if q.SectionID == sectionID {
			out = append(out, q)
		}
	}
	return out
}

const (
	MinAnswerScore = 1
	MaxAnswerScore = 5
)

// Answer is the respondent's rating of one question.
type Answer struct {
	QuestionID int       `json:"questionId"`
	Score      int       `json:"score"`
	Timestamp  time.Time `json:"timestamp"`
}

// Tier is one of the four maturity bands. Min is the inclusive lower bound in percent.
type Tier struct {
	Name        string  `json:"name"`
	Emoji       string  `json:"emoji"`
	Description string  `json:"description"`
	Range       string  `json:"range"`
	Color       string  `json:"color"`
	Min         float64 `json:"-"`
}

// SectionScore is the derived score of one section.
type SectionScore struct {
	SectionID   string  `json:"sectionId"`
	SectionName string  `json:"sectionName"`
	Score       int     `json:"score"`
	MaxScore    int     `json:"maxScore"`
	Percentage  float64 `json:"percentage"`
	Tier        Tier    `json:"tier"`
}

// QuizResult is computed once per completed run.
type QuizResult struct {
	TotalScore      int                     `json:"totalScore"`
	MaxScore        int                     `json:"maxScore"`
	Percentage      float64                 `json:"percentage"`
	Tier            Tier                    `json:"tier"`
	SectionScores   map[string]SectionScore `json:"sectionScores"`
	Recommendations []string                `json:"recommendations"`
	Timestamp       time.Time               `json:"timestamp"`
}

// UserInfo identifies the respondent. Only Email is required.
type UserInfo struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Company string `json:"company,omitempty"`
	Role    string `json:"role,omitempty"`
}

// Signup is the newsletter signup row written alongside every result.
type Signup struct {
	ID        int64
	User      UserInfo
	CreatedAt time.Time
}

// Record is the flattened, persisted form of a submission. Nil numeric fields and
// empty strings stand for missing column values.
type Record struct {
	ID                  int64
	Email               string
	Name                string
	Company             string
	Role                string
	TotalScore          *int
	MaxScore            *int
	Percentage          *float64
	TierName            string
	TierRange           string
	TierColor           string
	TierEmoji           string
	SectionScoresJSON   string
	RecommendationsJSON string
	AnswersJSON         string
	SubmittedAt         time.Time
}

// Submission is the outcome of persisting one completed quiz run.
type Submission struct {
	ID          int64      `json:"id"`
	User        UserInfo   `json:"user"`
	Result      QuizResult `json:"result"`
	Answers     []Answer   `json:"answers"`
	SubmittedAt time.Time  `json:"submittedAt"`
}

// SubmissionDetail is one stored submission with its serialized fields decoded.
type SubmissionDetail struct {
	ID              int64                   `json:"id"`
	Email           string                  `json:"email"`
	Name            string                  `json:"name"`
	Company         string                  `json:"company"`
	Role            string                  `json:"role"`
	Percentage      *float64                `json:"percentage"`
	TierName        string                  `json:"tier_name"`
	SubmittedAt     string                  `json:"submitted_at"`
	SectionScores   map[string]SectionScore `json:"section_scores"`
	Recommendations []string                `json:"recommendations"`
	Answers         []Answer                `json:"answers"`
}

// RecentResult is the dashboard listing row of a submission.
type RecentResult struct {
	ID          int64    `json:"id"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Company     string   `json:"company"`
	Role        string   `json:"role"`
	Percentage  *float64 `json:"percentage"`
	TierName    string   `json:"tier_name"`
	SubmittedAt string   `json:"submitted_at"`
}

// SectionAverage is the mean section percentage across recent submissions.
type SectionAverage struct {
	ID      string  `json:"id"`
	Average float64 `json:"average"`
}

// Overview is the admin dashboard summary across all submissions.
type Overview struct {
	TotalSignups       int              `json:"totalSignups"`
	TotalResults       int              `json:"totalResults"`
	AveragePercentage  float64          `json:"averagePercentage"`
	AnswerDistribution map[string]int   `json:"answerDistribution"`
	SectionAverages    []SectionAverage `json:"sectionAverages"`
	RecentResults      []RecentResult   `json:"recentResults"`
	SkippedRecords     int              `json:"skippedRecords"`
}

// ProgressVersion is the layout version of saved progress records.
const ProgressVersion = 1

// Progress is the resumable checkpoint of an in-flight quiz run.
type Progress struct {
	Version      int       `json:"version"`
	ID           string    `json:"id"`
	User         UserInfo  `json:"user"`
	CurrentIndex int       `json:"currentQuestionIndex"`
	Answers      []Answer  `json:"answers"`
	SavedAt      time.Time `json:"savedAt"`
}
