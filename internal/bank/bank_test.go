package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBankShape(t *testing.T) {
	b := Default()
	require.Len(t, b.Questions, 45)
	require.Len(t, b.Sections, 9)

	seen := make(map[int]bool)
	for i, q := range b.Questions {
		assert.Equal(t, i+1, q.ID, "questions are ordered by id")
		assert.False(t, seen[q.ID], "duplicate question id %d", q.ID)
		seen[q.ID] = true
		_, ok := b.Section(q.SectionID)
		assert.True(t, ok, "question %d references unknown section %q", q.ID, q.SectionID)
		assert.NotEmpty(t, q.Statement)
	}
}

func TestSectionSizes(t *testing.T) {
	b := Default()
	want := map[string]int{
		"energy-emissions":        7,
		"water-treatment":         5,
		"waste-circularity":       5,
		"sustainable-procurement": 5,
		"esg-compliance":          5,
		"governance-culture":      5,
		"nature-community":        5,
		"digital-efficiency":      4,
		"audit-readiness":         4,
	}
	for id, n := range want {
		assert.Len(t, b.QuestionsIn(id), n, id)
	}
}

func TestDefaultReturnsCopy(t *testing.T) {
	b := Default()
	b.Questions[0].Statement = "changed"
	assert.NotEqual(t, "changed", Default().Questions[0].Statement)
}
