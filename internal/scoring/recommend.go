package scoring

import (
	"sort"

	"carbon-quiz-service/internal/domain"
)

// recommendationBand pairs an exclusive upper bound with the generic advice for
// overall scores below it. These bounds (30/60/85) intentionally differ from the
// tier bounds (31/61/86); the recommendation text depends on them.
type recommendationBand struct {
	below  float64
	advice [2]string
}

var recommendationBands = []recommendationBand{
	{below: 30, advice: [2]string{
		"Start with a comprehensive sustainability audit to understand your current baseline.",
		"Implement basic energy tracking systems and water monitoring.",
	}},
	{below: 60, advice: [2]string{
		"Focus on building sustainability infrastructure and policies.",
		"Consider certification programs like ISO 14001 or B Corp.",
	}},
	{below: 85, advice: [2]string{
		"Optimize existing practices and explore advanced technologies.",
		"Develop a comprehensive carbon reduction strategy.",
	}},
}

var topBandAdvice = [2]string{
	"Lead industry sustainability initiatives and mentor other organizations.",
	"Explore innovative technologies and breakthrough solutions.",
}

// weakSectionThreshold is the section percentage under which section advice is added.
const weakSectionThreshold = 50

var sectionAdvice = map[string]string{
	"energy-emissions":        "Prioritize energy efficiency upgrades and renewable energy adoption.",
	"water-treatment":         "Implement water monitoring systems and conservation measures.",
	"waste-circularity":       "Develop a waste management strategy focusing on reduction and recycling.",
	"sustainable-procurement": "Evaluate supply chain sustainability and local sourcing options.",
	"nature-community":        "Assess environmental impact and develop community engagement programs.",
}

// Recommend returns the generic advice pair for the overall percentage followed by
// one entry per weak section with known advice, de-duplicated in first-seen order.
//
// Section order follows sectionOrder where given; sections missing from it come
// after, sorted by id, so the output never depends on map iteration.
func Recommend(overall float64, sectionScores map[string]domain.SectionScore, sectionOrder []string) []string {
	advice := topBandAdvice
	for _, band := range recommendationBands {
		if overall < band.below {
			advice = band.advice
			break
		}
	}
	out := []string{advice[0], advice[1]}

	for _, id := range orderedSectionIDs(sectionScores, sectionOrder) {
		s := sectionScores[id]
		if s.Percentage >= weakSectionThreshold {
			continue
		}
		if text, ok := sectionAdvice[s.SectionID]; ok {
			out = append(out, text)
		}
	}
	return dedupe(out)
}

func orderedSectionIDs(scores map[string]domain.SectionScore, order []string) []string {
	ids := make([]string, 0, len(scores))
	seen := make(map[string]bool, len(scores))
	for _, id := range order {
		if _, ok := scores[id]; ok && !seen[id] {
			ids = append(ids, id)
			seen[id] = true
		}
	}
	var rest []string
	for id := range scores {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	return append(ids, rest...)
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
