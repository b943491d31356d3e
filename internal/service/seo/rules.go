package seo

// Category groups rules for reporting and suggestion prioritization.
type Category string

const (
	CategoryBasicSEO           Category = "basic_seo"
	CategoryAdditional         Category = "additional"
	CategoryTitleReadability   Category = "title_readability"
	CategoryContentReadability Category = "content_readability"
)

// Rule names. Each name identifies one scoring check.
const (
	RuleKeywordInTitle           = "keyword_in_title"
	RuleKeywordInMetaDescription = "keyword_in_meta_description"
	RuleKeywordInURL             = "keyword_in_url"
	RuleKeywordAtContentStart    = "keyword_at_content_start"
	RuleKeywordInContent         = "keyword_in_content"
	RuleContentLength            = "content_length"

	RuleKeywordInSubheadings = "keyword_in_subheadings"
	RuleImageAltKeyword      = "image_alt_keyword"
	RuleKeywordDensity       = "keyword_density"
	RuleURLLength            = "url_length"
	RuleExternalLinks        = "external_links"
	RuleDoFollowExternalLink = "dofollow_external_link"
	RuleInternalLinks        = "internal_links"
	RuleFocusKeywordSet      = "focus_keyword_set"
	RuleContentAI            = "content_ai"

	RuleKeywordNearTitleStart = "keyword_near_title_start"
	RuleTitleSentiment        = "title_sentiment"
	RuleTitlePowerWord        = "title_power_word"
	RuleTitleHasNumber        = "title_has_number"

	RuleTableOfContents = "table_of_contents"
	RuleShortParagraphs = "short_paragraphs"
	RuleContentAssets   = "content_assets"
)

// Rule declares one scoring check and its weight in the final score.
type Rule struct {
	Name     string
	Category Category
	MaxScore int
}

// ruleTable is the process-wide rule registry. It is initialized once
// and never mutated; iteration order is the reporting order.
var ruleTable = []Rule{
	// Basic SEO (35)
	{RuleKeywordInTitle, CategoryBasicSEO, 8},
	{RuleKeywordInMetaDescription, CategoryBasicSEO, 6},
	{RuleKeywordInURL, CategoryBasicSEO, 5},
	{RuleKeywordAtContentStart, CategoryBasicSEO, 6},
	{RuleKeywordInContent, CategoryBasicSEO, 5},
	{RuleContentLength, CategoryBasicSEO, 5},

	// Additional (40)
	{RuleKeywordInSubheadings, CategoryAdditional, 6},
	{RuleImageAltKeyword, CategoryAdditional, 6},
	{RuleKeywordDensity, CategoryAdditional, 5},
	{RuleURLLength, CategoryAdditional, 3},
	{RuleExternalLinks, CategoryAdditional, 5},
	{RuleDoFollowExternalLink, CategoryAdditional, 4},
	{RuleInternalLinks, CategoryAdditional, 6},
	{RuleFocusKeywordSet, CategoryAdditional, 3},
	{RuleContentAI, CategoryAdditional, 2},

	// Title Readability (15)
	{RuleKeywordNearTitleStart, CategoryTitleReadability, 4},
	{RuleTitleSentiment, CategoryTitleReadability, 4},
	{RuleTitlePowerWord, CategoryTitleReadability, 4},
	{RuleTitleHasNumber, CategoryTitleReadability, 3},

	// Content Readability (10)
	{RuleTableOfContents, CategoryContentReadability, 3},
	{RuleShortParagraphs, CategoryContentReadability, 4},
	{RuleContentAssets, CategoryContentReadability, 3},
}

// categoryInfo declares the display name and the score each category
// contributes to the 100-point scale.
var categoryInfo = map[Category]struct {
	Name     string
	MaxScore int
}{
	CategoryBasicSEO:           {"Basic SEO", 35},
	CategoryAdditional:         {"Additional", 40},
	CategoryTitleReadability:   {"Title Readability", 15},
	CategoryContentReadability: {"Content Readability", 10},
}

// categoryOrder is the reporting order of categories.
var categoryOrder = []Category{
	CategoryBasicSEO,
	CategoryAdditional,
	CategoryTitleReadability,
	CategoryContentReadability,
}

// suggestionMessages are the fixed improvement texts used when a rule
// does not reach its maximum score.
var suggestionMessages = map[string]string{
	RuleKeywordInTitle:           "Add Focus Keyword to the SEO title.",
	RuleKeywordInMetaDescription: "Add Focus Keyword to your SEO Meta Description.",
	RuleKeywordInURL:             "Use Focus Keyword in the URL.",
	RuleKeywordAtContentStart:    "Use Focus Keyword at the beginning of your content.",
	RuleKeywordInContent:         "Use Focus Keyword in the content.",
	RuleContentLength:            "Content should be 600-2500 words long.",

	RuleKeywordInSubheadings: "Use Focus Keyword in subheading(s) like H2, H3, H4, etc..",
	RuleImageAltKeyword:      "Add an image with your Focus Keyword as alt text.",
	RuleKeywordDensity:       "Aim for around 1% Keyword Density.",
	RuleURLLength:            "URL is too long. Keep it under 75 characters.",
	RuleExternalLinks:        "Link out to external resources.",
	RuleDoFollowExternalLink: "Add DoFollow links pointing to external resources.",
	RuleInternalLinks:        "Add internal links in your content.",
	RuleFocusKeywordSet:      "Set a Focus Keyword for this content.",
	RuleContentAI:            "Use Content AI to optimise this Post.",

	RuleKeywordNearTitleStart: "Use the Focus Keyword near the beginning of SEO title.",
	RuleTitleSentiment:        "Titles with positive or negative sentiment work best for higher CTR.",
	RuleTitlePowerWord:        "Add power words to your title to increase CTR.",
	RuleTitleHasNumber:        "Add a number to your title to improve CTR.",

	RuleTableOfContents: "Use Table of Content to break-down your text.",
	RuleShortParagraphs: "Add short and concise paragraphs for better readability and UX.",
	RuleContentAssets:   "Add a few images and/or videos to make your content appealing.",
}

// TotalMaxScore is the scale the overall score is reported on.
func TotalMaxScore() int {
	total := 0
	for _, r := range ruleTable {
		total += r.MaxScore
	}
	return total
}

// Rules returns a copy of the rule registry.
func Rules() []Rule {
	out := make([]Rule, len(ruleTable))
	copy(out, ruleTable)
	return out
}

// suggestionPriority maps a rule's category to its suggestion priority.
func suggestionPriority(c Category) Priority {
	switch c {
	case CategoryBasicSEO:
		return PriorityHigh
	case CategoryAdditional:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
