package seo

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullyOptimizedInput builds content that satisfies every rule: keyword
// in title, meta, URL, opening paragraph, subheadings and alt texts,
// 2500+ words at roughly 1% density, internal and external links, a
// table of contents, short paragraphs and enough media.
func fullyOptimizedInput() AnalysisInput {
	var b strings.Builder
	b.WriteString("<p>This seo guide explains everything about the topic in detail.</p>")
	b.WriteString("<p>Table of Contents</p>")
	b.WriteString("<h2>Why this seo guide works</h2>")
	for i := 0; i < 4; i++ {
		fmt.Fprintf(&b, `<img src="img%d.jpg" alt="seo guide illustration">`, i)
	}
	b.WriteString(`<p><a href="/start">start</a> <a href="/middle">middle</a> <a href="/end">end</a> <a href="https://golang.org">Go</a></p>`)
	for i := 0; i < 25; i++ {
		b.WriteString("<p>")
		b.WriteString(strings.Repeat("filler ", 100))
		b.WriteString("seo guide</p>")
	}

	return AnalysisInput{
		Title:           "Best seo guide 2026 for developers",
		Content:         b.String(),
		MetaDescription: "The complete seo guide with everything you need.",
		URL:             "https://example.com/seo-guide",
		FocusKeyword:    "seo guide",
	}
}

func TestAnalyzeFullyOptimizedContent(t *testing.T) {
	engine := NewEngine("https://example.com")
	result := engine.Analyze(fullyOptimizedInput())

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, RatingExcellent, result.Rating)
	assert.Empty(t, result.Suggestions)
	for name, res := range result.Results {
		assert.True(t, res.Passed, "rule %s: %s", name, res.Message)
	}
}

func TestAnalyzeUnrelatedKeyword(t *testing.T) {
	engine := NewEngine("https://example.com")
	result := engine.Analyze(AnalysisInput{
		Title:        "Hello World",
		Content:      "<p>Some unrelated content about something else.</p>",
		FocusKeyword: "dien thoai",
	})

	assert.Equal(t, RatingBad, result.Rating)
	assert.Less(t, result.Score, 30)
	// Only the keyword-independent rules can score here.
	assert.True(t, result.Results[RuleFocusKeywordSet].Passed)
	assert.True(t, result.Results[RuleContentAI].Passed)
	assert.False(t, result.Results[RuleKeywordInTitle].Passed)
	assert.False(t, result.Results[RuleKeywordInContent].Passed)
}

func TestAnalyzeEmptyKeyword(t *testing.T) {
	engine := NewEngine("https://example.com")
	result := engine.Analyze(AnalysisInput{
		Title:        "Some title",
		Content:      "<p>Some content.</p>",
		FocusKeyword: "   ",
	})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, RatingUnknown, result.Rating)
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, RuleFocusKeywordSet, result.Suggestions[0].Rule)
	assert.Equal(t, PriorityHigh, result.Suggestions[0].Priority)
	assert.False(t, result.Results[RuleFocusKeywordSet].Passed)
}

func TestAnalyzeKeywordDensityCurve(t *testing.T) {
	engine := NewEngine("")

	// 1000-word body with a varying number of keyword occurrences.
	build := func(occurrences int) AnalysisInput {
		var b strings.Builder
		b.WriteString("<p>")
		b.WriteString(strings.Repeat("filler ", 1000-occurrences))
		b.WriteString(strings.Repeat("cat ", occurrences))
		b.WriteString("</p>")
		return AnalysisInput{Content: b.String(), FocusKeyword: "cat"}
	}

	tests := []struct {
		occurrences int
		score       int
	}{
		{0, 0},  // 0.0%, below range
		{4, 0},  // 0.4%, below range
		{8, 2},  // 0.8%, approaching
		{15, 5}, // 1.5%, ideal
		{30, 0}, // 3.0%, stuffing
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d occurrences", tt.occurrences), func(t *testing.T) {
			result := engine.Analyze(build(tt.occurrences))

			assert.Equal(t, 1000, result.Stats.WordCount)
			assert.Equal(t, tt.occurrences, result.Stats.KeywordCount)
			assert.Equal(t, tt.score, result.Results[RuleKeywordDensity].Score)
		})
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	engine := NewEngine("https://example.com")
	input := fullyOptimizedInput()

	first := engine.Analyze(input)
	second := engine.Analyze(input)

	assert.Equal(t, first, second)
}

func TestAnalyzeScoreBounds(t *testing.T) {
	engine := NewEngine("https://example.com")

	inputs := []AnalysisInput{
		{FocusKeyword: "x"},
		{Title: "t", FocusKeyword: "kw"},
		fullyOptimizedInput(),
	}

	for _, input := range inputs {
		result := engine.Analyze(input)

		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, result.MaxScore)
		assert.Equal(t, 100, result.MaxScore)

		for name, res := range result.Results {
			assert.GreaterOrEqual(t, res.Score, 0, "rule %s", name)
			assert.LessOrEqual(t, res.Score, res.MaxScore, "rule %s", name)
			assert.Equal(t, res.Score == res.MaxScore, res.Passed, "rule %s", name)
		}
	}
}

func TestAnalyzeCategoryAdditivity(t *testing.T) {
	engine := NewEngine("https://example.com")
	result := engine.Analyze(AnalysisInput{
		Title:        "A guide to gardening in 3 steps",
		Content:      "<p>Gardening is fun.</p><h2>Basics of gardening</h2><p>More text about plants.</p>",
		URL:          "https://example.com/gardening",
		FocusKeyword: "gardening",
	})

	categoryTotal := 0
	for _, c := range result.Categories {
		categoryTotal += c.Score
		errTotal := 0
		for _, e := range c.Errors {
			errTotal += e.MaxScore - e.Score
		}
		assert.Equal(t, c.MaxScore-c.Score, errTotal, "category %s", c.Name)
	}
	assert.Equal(t, result.Score, categoryTotal)
}

func TestAnalyzeSuggestionOrdering(t *testing.T) {
	engine := NewEngine("https://example.com")
	result := engine.Analyze(AnalysisInput{
		Title:        "Unrelated title",
		Content:      "<p>Nothing about the keyword here.</p>",
		FocusKeyword: "green tea",
	})

	rank := map[Priority]int{PriorityHigh: 3, PriorityMedium: 2, PriorityLow: 1}
	for i := 1; i < len(result.Suggestions); i++ {
		prev, cur := result.Suggestions[i-1], result.Suggestions[i]
		assert.GreaterOrEqual(t, rank[prev.Priority], rank[cur.Priority],
			"suggestion %s before %s", prev.Rule, cur.Rule)
	}

	// Every suggestion corresponds to a rule that left points behind.
	for _, s := range result.Suggestions {
		res := result.Results[s.Rule]
		assert.Less(t, res.Score, res.MaxScore, "rule %s", s.Rule)
	}
}
