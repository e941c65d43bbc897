package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"sort"
	"strconv"

	"carbon-quiz-service/internal/domain"
	"carbon-quiz-service/internal/records"
)

// RecentLimit bounds the dashboard listing and the section-average window.
const RecentLimit = 50

// AdminService serves read-only views over all stored submissions.
type AdminService struct {
	store        SubmissionStore
	sectionOrder []string
}

func NewAdminService(store SubmissionStore, bank domain.Bank) *AdminService {
	order := make([]string, 0, len(bank.Sections))
	for _, s := range bank.Sections {
		order = append(order, s.ID)
	}
	return &AdminService{store: store, sectionOrder: order}
}

// Overview aggregates every stored submission. Records whose serialized fields do
// not decode are logged and left out; only a failing bulk read fails the call.
func (s *AdminService) Overview(ctx context.Context) (domain.Overview, error) {
	signups, err := s.store.CountSignups(ctx)
	if err != nil {
		return domain.Overview{}, err
	}
	results, avg, err := s.store.CountResultsAndAvgPercentage(ctx)
	if err != nil {
		return domain.Overview{}, err
	}
	rows, err := s.store.ListAll(ctx)
	if err != nil {
		return domain.Overview{}, err
	}

	skipped := make(map[int64]struct{})
	skip := func(id int64, column string, err error) {
		log.Printf("overview: skipping %s of result %d: %v", column, id, err)
		skipped[id] = struct{}{}
	}

	distribution := map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	for _, row := range rows {
		answers, err := records.Answers(row.AnswersJSON)
		if err != nil {
			skip(row.ID, "answers", err)
			continue
		}
		for _, a := range answers {
			key := strconv.Itoa(a.Score)
			if _, ok := distribution[key]; ok {
				distribution[key]++
			}
		}
	}

	recent := rows
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}

	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, row := range recent {
		sections, err := records.SectionScores(row.SectionScoresJSON)
		if err != nil {
			skip(row.ID, "section scores", err)
			continue
		}
		for _, sec := range sections {
			id := sec.SectionID
			if id == "" {
				id = sec.SectionName
			}
			if id == "" {
				continue
			}
			totals[id] += sec.Percentage
			counts[id]++
		}
	}

	listing := make([]domain.RecentResult, 0, len(recent))
	for _, row := range recent {
		listing = append(listing, records.Recent(row))
	}

	return domain.Overview{
		TotalSignups:       signups,
		TotalResults:       results,
		AveragePercentage:  round1(avg),
		AnswerDistribution: distribution,
		SectionAverages:    s.sectionAverages(totals, counts),
		RecentResults:      listing,
		SkippedRecords:     len(skipped),
	}, nil
}

func (s *AdminService) sectionAverages(totals map[string]float64, counts map[string]int) []domain.SectionAverage {
	ids := make([]string, 0, len(totals))
	known := make(map[string]bool, len(s.sectionOrder))
	for _, id := range s.sectionOrder {
		known[id] = true
		if _, ok := totals[id]; ok {
			ids = append(ids, id)
		}
	}
	var rest []string
	for id := range totals {
		if !known[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	ids = append(ids, rest...)

	out := make([]domain.SectionAverage, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.SectionAverage{ID: id, Average: round1(totals[id] / float64(counts[id]))})
	}
	return out
}

// Detail returns one submission with every serialized field decoded. A malformed
// record fails with domain.ErrMalformedRecord rather than returning partial data.
func (s *AdminService) Detail(ctx context.Context, id int64) (domain.SubmissionDetail, error) {
	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return domain.SubmissionDetail{}, err
	}
	detail, err := records.Detail(rec)
	if err != nil {
		return domain.SubmissionDetail{}, fmt.Errorf("result %d: %w", id, err)
	}
	return detail, nil
}

// Export writes all submissions as CSV, newest first.
func (s *AdminService) Export(ctx context.Context, w io.Writer, full bool) error {
	rows, err := s.store.ListAll(ctx)
	if err != nil {
		return err
	}
	return records.WriteCSV(w, rows, full)
}

func round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}
