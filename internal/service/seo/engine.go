package seo

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

// Engine scores content against the rule table. It holds only the site
// base URL used to classify links, so a single value can serve
// concurrent callers.
type Engine struct {
	siteBaseURL string
}

// NewEngine creates an engine. siteBaseURL is the public base URL of
// the site (e.g. "https://example.com"); links under it count as
// internal.
func NewEngine(siteBaseURL string) *Engine {
	return &Engine{siteBaseURL: strings.TrimRight(siteBaseURL, "/")}
}

// Analyze runs every rule against the input and returns one immutable
// result. It never returns an error: absent fields degrade to failed
// rules, and an empty focus keyword short-circuits to a zero score.
func (e *Engine) Analyze(input AnalysisInput) *Result {
	keyword := strings.ToLower(strings.TrimSpace(input.FocusKeyword))
	if keyword == "" {
		return e.noKeywordResult(input)
	}

	a := newAnalysis(input, keyword, e.siteBaseURL)

	results := make(map[string]RuleResult, len(ruleTable))
	categories := newCategorySummaries()
	var suggestions []Suggestion
	total := 0

	for _, rule := range ruleTable {
		res := a.run(rule)
		results[rule.Name] = res
		total += res.Score

		summary := categories[rule.Category]
		summary.Score += res.Score
		if res.Score < rule.MaxScore {
			summary.Errors = append(summary.Errors, RuleError{
				Rule:     rule.Name,
				Message:  suggestionMessages[rule.Name],
				Score:    res.Score,
				MaxScore: rule.MaxScore,
			})
			suggestions = append(suggestions, Suggestion{
				Category: rule.Category,
				Rule:     rule.Name,
				Message:  suggestionMessages[rule.Name],
				Priority: suggestionPriority(rule.Category),
			})
		}
		categories[rule.Category] = summary
	}

	rankSuggestions(suggestions, results)

	return &Result{
		Score:       total,
		MaxScore:    TotalMaxScore(),
		Rating:      ratingFor(total),
		Results:     results,
		Categories:  categories,
		Suggestions: suggestions,
		Stats:       a.stats(),
	}
}

// noKeywordResult is the distinguished short-circuit outcome: nothing
// is scored and the only suggestion is to set a focus keyword.
func (e *Engine) noKeywordResult(input AnalysisInput) *Result {
	a := newAnalysis(input, "", e.siteBaseURL)
	return &Result{
		Score:    0,
		MaxScore: TotalMaxScore(),
		Rating:   RatingUnknown,
		Results: map[string]RuleResult{
			RuleFocusKeywordSet: {Passed: false, Score: 0, MaxScore: 3, Message: suggestionMessages[RuleFocusKeywordSet]},
		},
		Categories: newCategorySummaries(),
		Suggestions: []Suggestion{{
			Category: CategoryAdditional,
			Rule:     RuleFocusKeywordSet,
			Message:  suggestionMessages[RuleFocusKeywordSet],
			Priority: PriorityHigh,
		}},
		Stats: a.stats(),
	}
}

func newCategorySummaries() map[Category]CategorySummary {
	categories := make(map[Category]CategorySummary, len(categoryOrder))
	for _, c := range categoryOrder {
		info := categoryInfo[c]
		categories[c] = CategorySummary{Name: info.Name, MaxScore: info.MaxScore}
	}
	return categories
}

// rankSuggestions orders by priority, then by the points the rule left
// on the table, so the biggest missed opportunity comes first.
func rankSuggestions(suggestions []Suggestion, results map[string]RuleResult) {
	rank := map[Priority]int{PriorityHigh: 3, PriorityMedium: 2, PriorityLow: 1}
	missing := func(s Suggestion) int {
		r := results[s.Rule]
		return r.MaxScore - r.Score
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		if rank[suggestions[i].Priority] != rank[suggestions[j].Priority] {
			return rank[suggestions[i].Priority] > rank[suggestions[j].Priority]
		}
		return missing(suggestions[i]) > missing(suggestions[j])
	})
}

func ratingFor(score int) Rating {
	switch {
	case score >= 90:
		return RatingExcellent
	case score >= 70:
		return RatingGood
	case score >= 50:
		return RatingOK
	case score >= 30:
		return RatingPoor
	default:
		return RatingBad
	}
}

func (a *analysis) stats() Stats {
	density := 0.0
	if a.wordCount > 0 {
		density = float64(a.keywordCount) / float64(a.wordCount) * 100
		density = math.Round(density*100) / 100
	}
	return Stats{
		TitleLength:    utf8.RuneCountInString(a.input.Title),
		ContentLength:  utf8.RuneCountInString(a.input.Content),
		WordCount:      a.wordCount,
		KeywordCount:   a.keywordCount,
		KeywordDensity: density,
	}
}
