package scoring

import (
	"fmt"
	"math"
)

// SectionCompletionMessage is the encouragement shown when a respondent finishes a section.
func SectionCompletionMessage(sectionName string, percentage float64) string {
	p := math.Round(percentage)
	switch {
	case p >= TierLeader.Min:
		return fmt.Sprintf("%s: Outstanding progress so far — you're leading the pack here.", sectionName)
	case p >= TierAchiever.Min:
		return fmt.Sprintf("%s: Strong performance — a few optimizations will push you into leader territory.", sectionName)
	case p >= TierBuilder.Min:
		return fmt.Sprintf("%s: Solid start — focus on consistent practices to lift your score.", sectionName)
	default:
		return fmt.Sprintf("%s: Plenty of quick wins ahead — let's tackle the basics in the next section.", sectionName)
	}
}
