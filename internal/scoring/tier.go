package scoring

import "carbon-quiz-service/internal/domain"

var (
	TierExplorer = domain.Tier{
		Name:        "Explorer",
		Emoji:       "🌱",
		Description: "Just getting started. Room for major impact.",
		Range:       "0–30%",
		Color:       "#ef4444",
		Min:         0,
	}
	TierBuilder = domain.Tier{
		Name:        "Builder",
		Emoji:       "🌿",
		Description: "Taking steps toward sustainability. Good foundation.",
		Range:       "31–60%",
		Color:       "#f59e0b",
		Min:         31,
	}
	TierAchiever = domain.Tier{
		Name:        "Achiever",
		Emoji:       "🌲",
		Description: "Mature practices. Close to audit-ready.",
		Range:       "61–85%",
		Color:       "#3b82f6",
		Min:         61,
	}
	TierLeader = domain.Tier{
		Name:        "Leader",
		Emoji:       "🌳",
		Description: "Green trailblazer. Ready for certification.",
		Range:       "86–100%",
		Color:       "#22c55e",
		Min:         86,
	}
)

// tierBands is ordered by descending lower bound; the last entry is the default.
var tierBands = []domain.Tier{TierLeader, TierAchiever, TierBuilder, TierExplorer}

// Tiers returns the four bands in ascending order.
func Tiers() []domain.Tier {
	return []domain.Tier{TierExplorer, TierBuilder, TierAchiever, TierLeader}
}

// Classify maps a percentage onto its tier. Values are not clamped: anything
// below the Builder bound, negative or NaN included, lands in Explorer.
func Classify(percentage float64) domain.Tier {
	for _, t := range tierBands[:len(tierBands)-1] {
		if percentage >= t.Min {
			return t
		}
	}
	return tierBands[len(tierBands)-1]
}

// TierByName looks a tier up by its name.
func TierByName(name string) (domain.Tier, bool) {
	for _, t := range tierBands {
		if t.Name == name {
			return t, true
		}
	}
	return domain.Tier{}, false
}
