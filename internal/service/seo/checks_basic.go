package seo

import (
	"fmt"
	"strings"
)

func (a *analysis) checkKeywordInTitle(max int) RuleResult {
	if strings.Contains(a.lowerTitle, a.keyword) {
		return pass(max, "Focus Keyword found in the SEO title.")
	}
	return fail("Focus Keyword not found in the SEO title.")
}

func (a *analysis) checkKeywordInMetaDescription(max int) RuleResult {
	meta := strings.TrimSpace(a.input.MetaDescription)
	if meta == "" {
		return fail("Meta Description is missing.")
	}
	if strings.Contains(strings.ToLower(meta), a.keyword) {
		return pass(max, "Focus Keyword found in the Meta Description.")
	}
	return fail("Focus Keyword not found in the Meta Description.")
}

func (a *analysis) checkKeywordInURL(max int) RuleResult {
	if a.input.URL == "" {
		return fail("No URL to check.")
	}
	lowerURL := strings.ToLower(a.input.URL)
	slug := strings.ReplaceAll(a.keyword, " ", "-")
	if strings.Contains(lowerURL, a.keyword) || strings.Contains(lowerURL, slug) {
		return pass(max, "Focus Keyword found in the URL.")
	}
	return fail("Focus Keyword not found in the URL.")
}

func (a *analysis) checkKeywordAtContentStart(max int) RuleResult {
	first := strings.ToLower(ExtractFirstParagraph(a.input.Content))
	if strings.Contains(first, a.keyword) {
		return pass(max, "Focus Keyword appears at the beginning of the content.")
	}
	return fail("Focus Keyword does not appear at the beginning of the content.")
}

func (a *analysis) checkKeywordInContent(max int) RuleResult {
	if strings.Contains(a.plainContent, a.keyword) {
		return pass(max, "Focus Keyword found in the content.")
	}
	return fail("Focus Keyword not found in the content.")
}

// checkContentLength grades word count in steps. Longer content never
// scores worse than shorter content; there is no upper penalty.
func (a *analysis) checkContentLength(max int) RuleResult {
	wc := a.wordCount
	switch {
	case wc >= 2500:
		return pass(max, fmt.Sprintf("Content is %d words long. Excellent!", wc))
	case wc >= 1500:
		return RuleResult{Score: 4, Message: fmt.Sprintf("Content is %d words long. Good job!", wc)}
	case wc >= 1000:
		return RuleResult{Score: 3, Message: fmt.Sprintf("Content is %d words long. Consider writing more in-depth content.", wc)}
	case wc >= 600:
		return RuleResult{Score: 2, Message: fmt.Sprintf("Content is %d words long. Aim for 1000 words or more.", wc)}
	default:
		return fail(fmt.Sprintf("Content is %d words long. Content should be at least 600 words.", wc))
	}
}
