package seo

import (
	"strings"
	"unicode/utf8"
)

// Sentiment and power word lists. Substring membership is intentional
// to match the reference behavior ("best" matches "the best phones").
var sentimentWords = []string{
	// positive
	"best", "amazing", "incredible", "outstanding", "excellent", "perfect",
	"ultimate", "superior", "fantastic", "wonderful", "great", "awesome",
	"tốt nhất", "hàng đầu", "tuyệt vời", "xuất sắc",
	// negative
	"worst", "terrible", "horrible", "awful", "failed", "disaster",
	"avoid", "never", "stop", "quit",
	"tệ nhất", "tránh xa",
}

var powerWords = []string{
	"free", "new", "proven", "results", "easy", "step", "guide", "how",
	"complete", "essential", "exclusive", "limited", "secret",
	"powerful", "effective", "advanced", "professional", "expert",
	"miễn phí", "bí quyết", "hướng dẫn", "mẹo", "độc quyền",
	"khuyến mại", "giảm giá", "ưu đãi", "đánh giá", "so sánh",
}

// checkKeywordNearTitleStart passes when the keyword begins within the
// first 10 characters of the title.
func (a *analysis) checkKeywordNearTitleStart(max int) RuleResult {
	idx := strings.Index(a.lowerTitle, a.keyword)
	if idx < 0 {
		return fail("Focus Keyword not found in the SEO title.")
	}
	if utf8.RuneCountInString(a.lowerTitle[:idx]) <= 10 {
		return pass(max, "Focus Keyword used near the beginning of the SEO title.")
	}
	return fail("Focus Keyword appears too far into the SEO title.")
}

func (a *analysis) checkTitleSentiment(max int) RuleResult {
	if containsAny(a.lowerTitle, sentimentWords) {
		return pass(max, "Title has a positive or negative sentiment word.")
	}
	return fail("Title doesn't contain a positive or a negative sentiment word.")
}

func (a *analysis) checkTitlePowerWord(max int) RuleResult {
	if containsAny(a.lowerTitle, powerWords) {
		return pass(max, "Title contains a power word.")
	}
	return fail("Title doesn't contain a power word.")
}

func (a *analysis) checkTitleHasNumber(max int) RuleResult {
	if digitRe.MatchString(a.input.Title) {
		return pass(max, "Title contains a number.")
	}
	return fail("Title doesn't contain a number.")
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
