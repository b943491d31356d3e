package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleTableCategoryBudgets(t *testing.T) {
	sums := make(map[Category]int)
	for _, r := range ruleTable {
		sums[r.Category] += r.MaxScore
	}

	for c, info := range categoryInfo {
		assert.Equal(t, info.MaxScore, sums[c], "category %s", c)
	}
	assert.Equal(t, 100, TotalMaxScore())
}

func TestRuleTableNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range ruleTable {
		assert.False(t, seen[r.Name], "duplicate rule %s", r.Name)
		seen[r.Name] = true
	}
}

func TestEveryRuleHasSuggestionMessage(t *testing.T) {
	for _, r := range ruleTable {
		assert.NotEmpty(t, suggestionMessages[r.Name], "rule %s", r.Name)
	}
}

func TestRulesReturnsCopy(t *testing.T) {
	rules := Rules()
	rules[0].MaxScore = 999

	assert.NotEqual(t, 999, ruleTable[0].MaxScore)
}

func TestSuggestionPriority(t *testing.T) {
	assert.Equal(t, PriorityHigh, suggestionPriority(CategoryBasicSEO))
	assert.Equal(t, PriorityMedium, suggestionPriority(CategoryAdditional))
	assert.Equal(t, PriorityLow, suggestionPriority(CategoryTitleReadability))
	assert.Equal(t, PriorityLow, suggestionPriority(CategoryContentReadability))
}
