package seo

// AnalysisInput contains the content fields to score. All fields are
// optional except FocusKeyword; absent fields degrade to failed rules,
// never to errors.
type AnalysisInput struct {
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	MetaDescription string     `json:"meta_description"`
	URL             string     `json:"url"`
	FocusKeyword    string     `json:"focus_keyword"`
	Images          []Image    `json:"images"`
	Social          SocialData `json:"social_data"`
}

// Image describes an image attached to the content being scored.
type Image struct {
	Alt   string `json:"alt"`
	Title string `json:"title"`
}

// SocialData holds the social sharing metadata of the content.
type SocialData struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Rating is the coarse score bucket shown to editors.
type Rating string

const (
	RatingUnknown   Rating = "unknown"
	RatingBad       Rating = "bad"
	RatingPoor      Rating = "poor"
	RatingOK        Rating = "ok"
	RatingGood      Rating = "good"
	RatingExcellent Rating = "excellent"
)

// Priority orders suggestions by how much a rule matters.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// RuleResult is the outcome of a single rule. Passed means the rule
// scored its maximum, not merely a non-zero score.
type RuleResult struct {
	Passed   bool   `json:"passed"`
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
	Message  string `json:"message"`
}

// RuleError describes a rule that did not reach its maximum score.
type RuleError struct {
	Rule     string `json:"rule"`
	Message  string `json:"message"`
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
}

// CategorySummary aggregates the rules of one category.
type CategorySummary struct {
	Name     string      `json:"name"`
	Score    int         `json:"score"`
	MaxScore int         `json:"max_score"`
	Errors   []RuleError `json:"errors"`
}

// Suggestion is an actionable improvement derived from a failed or
// partially scored rule.
type Suggestion struct {
	Category Category `json:"category"`
	Rule     string   `json:"rule"`
	Message  string   `json:"message"`
	Priority Priority `json:"priority"`
}

// Stats summarizes the text measurements used by the rules.
type Stats struct {
	TitleLength    int     `json:"title_length"`
	ContentLength  int     `json:"content_length"`
	WordCount      int     `json:"word_count"`
	KeywordCount   int     `json:"keyword_count"`
	KeywordDensity float64 `json:"keyword_density"`
}

// Result is the complete analysis produced by one Analyze call. It is
// never mutated after being returned.
type Result struct {
	Score       int                         `json:"score"`
	MaxScore    int                         `json:"max_score"`
	Rating      Rating                      `json:"rating"`
	Results     map[string]RuleResult       `json:"results"`
	Categories  map[Category]CategorySummary `json:"categories"`
	Suggestions []Suggestion                `json:"suggestions"`
	Stats       Stats                       `json:"stats"`
}
