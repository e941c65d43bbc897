package scoring_test

import (
	"math"
	"testing"

	"carbon-quiz-service/internal/scoring"
	"github.com/stretchr/testify/assert"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{0, "Explorer"},
		{30, "Explorer"},
		{30.999, "Explorer"},
		{31, "Builder"},
		{60, "Builder"},
		{60.5, "Builder"},
		{61, "Achiever"},
		{85, "Achiever"},
		{85.9, "Achiever"},
		{86, "Leader"},
		{100, "Leader"},
		{-5, "Explorer"},
		{140, "Leader"},
		{math.NaN(), "Explorer"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scoring.Classify(tt.pct).Name, "classify(%v)", tt.pct)
	}
}

func TestTierBandsPartitionRange(t *testing.T) {
	tiers := scoring.Tiers()
	assert.Len(t, tiers, 4)
	assert.Equal(t, 0.0, tiers[0].Min)
	for i := 1; i < len(tiers); i++ {
		assert.Greater(t, tiers[i].Min, tiers[i-1].Min)
		// Just below each lower bound belongs to the previous band.
		assert.Equal(t, tiers[i-1].Name, scoring.Classify(tiers[i].Min-0.001).Name)
		assert.Equal(t, tiers[i].Name, scoring.Classify(tiers[i].Min).Name)
	}
}
