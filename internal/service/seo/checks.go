package seo

import "strings"

// analysis carries one call's normalized input. Every check reads from
// it; nothing writes after construction.
type analysis struct {
	input   AnalysisInput
	keyword string
	baseURL string

	lowerTitle   string
	plainContent string
	wordCount    int
	keywordCount int
	links        []Link
}

func newAnalysis(input AnalysisInput, keyword, baseURL string) *analysis {
	return &analysis{
		input:        input,
		keyword:      keyword,
		baseURL:      baseURL,
		lowerTitle:   strings.ToLower(input.Title),
		plainContent: strings.ToLower(StripTags(input.Content)),
		wordCount:    CountWords(input.Content),
		keywordCount: CountKeywordOccurrences(input.Content, keyword),
		links:        ExtractLinks(input.Content),
	}
}

// run evaluates one rule. An unknown rule name is a logic fault and is
// reported as a failed result rather than propagated.
func (a *analysis) run(r Rule) RuleResult {
	var res RuleResult
	switch r.Name {
	case RuleKeywordInTitle:
		res = a.checkKeywordInTitle(r.MaxScore)
	case RuleKeywordInMetaDescription:
		res = a.checkKeywordInMetaDescription(r.MaxScore)
	case RuleKeywordInURL:
		res = a.checkKeywordInURL(r.MaxScore)
	case RuleKeywordAtContentStart:
		res = a.checkKeywordAtContentStart(r.MaxScore)
	case RuleKeywordInContent:
		res = a.checkKeywordInContent(r.MaxScore)
	case RuleContentLength:
		res = a.checkContentLength(r.MaxScore)
	case RuleKeywordInSubheadings:
		res = a.checkKeywordInSubheadings(r.MaxScore)
	case RuleImageAltKeyword:
		res = a.checkImageAltKeyword(r.MaxScore)
	case RuleKeywordDensity:
		res = a.checkKeywordDensity(r.MaxScore)
	case RuleURLLength:
		res = a.checkURLLength(r.MaxScore)
	case RuleExternalLinks:
		res = a.checkExternalLinks(r.MaxScore)
	case RuleDoFollowExternalLink:
		res = a.checkDoFollowExternalLink(r.MaxScore)
	case RuleInternalLinks:
		res = a.checkInternalLinks(r.MaxScore)
	case RuleFocusKeywordSet:
		res = a.checkFocusKeywordSet(r.MaxScore)
	case RuleContentAI:
		res = a.checkContentAI(r.MaxScore)
	case RuleKeywordNearTitleStart:
		res = a.checkKeywordNearTitleStart(r.MaxScore)
	case RuleTitleSentiment:
		res = a.checkTitleSentiment(r.MaxScore)
	case RuleTitlePowerWord:
		res = a.checkTitlePowerWord(r.MaxScore)
	case RuleTitleHasNumber:
		res = a.checkTitleHasNumber(r.MaxScore)
	case RuleTableOfContents:
		res = a.checkTableOfContents(r.MaxScore)
	case RuleShortParagraphs:
		res = a.checkShortParagraphs(r.MaxScore)
	case RuleContentAssets:
		res = a.checkContentAssets(r.MaxScore)
	default:
		return RuleResult{Passed: false, Score: 0, MaxScore: r.MaxScore, Message: "unknown rule: " + r.Name}
	}

	if res.Score < 0 {
		res.Score = 0
	}
	if res.Score > r.MaxScore {
		res.Score = r.MaxScore
	}
	res.MaxScore = r.MaxScore
	res.Passed = res.Score == r.MaxScore
	return res
}

// pass and fail build the two binary outcomes.
func pass(max int, message string) RuleResult {
	return RuleResult{Passed: true, Score: max, Message: message}
}

func fail(message string) RuleResult {
	return RuleResult{Passed: false, Score: 0, Message: message}
}
