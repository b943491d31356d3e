package seo

import (
	"fmt"
	"regexp"
)

var tocRe = regexp.MustCompile(`(?i)table\s+of\s+contents|mục\s*lục|\btoc\b|class=["'][^"']*toc`)

// shortParagraphWordLimit is the ceiling a single paragraph may reach
// before the whole rule fails.
const shortParagraphWordLimit = 120

func (a *analysis) checkTableOfContents(max int) RuleResult {
	if tocRe.MatchString(a.input.Content) {
		return pass(max, "Table of Contents found in the content.")
	}
	return fail("No Table of Contents found in the content.")
}

// checkShortParagraphs fails on the first paragraph over the limit. One
// wall of text hurts readability no matter how short the rest is.
func (a *analysis) checkShortParagraphs(max int) RuleResult {
	paragraphs := ExtractParagraphs(a.input.Content)
	if len(paragraphs) == 0 {
		return fail("Content has no paragraphs.")
	}
	for _, p := range paragraphs {
		if wc := CountWords(p); wc > shortParagraphWordLimit {
			return fail(fmt.Sprintf("A paragraph is %d words long. Keep paragraphs under %d words.", wc, shortParagraphWordLimit))
		}
	}
	return pass(max, "Paragraphs are short and concise.")
}

// checkContentAssets counts images, videos and embeds, with a bonus
// point when a video is present.
func (a *analysis) checkContentAssets(max int) RuleResult {
	images := len(imgTagRe.FindAllString(a.input.Content, -1))
	videos := len(videoRe.FindAllString(a.input.Content, -1))
	total := images + videos
	if total == 0 {
		return fail("Content has no images or videos.")
	}

	score := total
	if score > max {
		score = max
	}
	if videos > 0 && score < max {
		score++
	}
	if score == max {
		return pass(max, fmt.Sprintf("Content has %d media asset(s).", total))
	}
	return RuleResult{Score: score, Message: fmt.Sprintf("Content has %d media asset(s). Add a few more images or a video.", total)}
}
