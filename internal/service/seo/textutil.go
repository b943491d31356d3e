package seo

import (
	"regexp"
	"strings"
)

// Regex-based text processing. The reference behavior treats content as
// HTML-ish text and never parses a real DOM, so malformed markup
// degrades to empty matches instead of failing.
var (
	tagRe = regexp.MustCompile(`<[^>]*>`)

	// Keeps word characters plus the extended Latin blocks so that
	// Vietnamese diacritics count as letters, not punctuation.
	nonWordRe = regexp.MustCompile(`[^\w\s\x{00C0}-\x{024F}\x{1E00}-\x{1EFF}]`)
	spaceRe   = regexp.MustCompile(`\s+`)

	headingRe   = regexp.MustCompile(`(?is)<h[2-6][^>]*>(.*?)</h[2-6]>`)
	paragraphRe = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)
	breakRe     = regexp.MustCompile(`(?i)<br\s*/?>|</(?:div|section|article|blockquote|li|ul|ol|h[1-6])>`)
	blankLineRe = regexp.MustCompile(`\n\s*\n`)

	linkRe     = regexp.MustCompile(`(?i)<a[^>]*href=["']([^"']*)["'][^>]*>`)
	nofollowRe = regexp.MustCompile(`(?i)rel=["'][^"']*nofollow[^"']*["']`)
	httpRe     = regexp.MustCompile(`(?i)^https?://`)

	imgTagRe = regexp.MustCompile(`(?i)<img[^>]*>`)
	imgAltRe = regexp.MustCompile(`(?i)<img[^>]*alt=["']([^"']*)["'][^>]*>`)
	videoRe  = regexp.MustCompile(`(?i)<video[^>]*>|<iframe[^>]*>`)

	digitRe = regexp.MustCompile(`\d`)
)

// Link is one anchor occurrence in the content. RawTag keeps the full
// opening tag so rel attributes can be inspected.
type Link struct {
	Href   string
	RawTag string
}

// StripTags removes all <...> markup. Entities are not decoded.
func StripTags(html string) string {
	return tagRe.ReplaceAllString(html, " ")
}

// normalizeText strips markup, replaces punctuation with spaces,
// collapses whitespace and lower-cases the remainder.
func normalizeText(text string) string {
	plain := StripTags(text)
	plain = nonWordRe.ReplaceAllString(plain, " ")
	plain = spaceRe.ReplaceAllString(plain, " ")
	return strings.ToLower(strings.TrimSpace(plain))
}

// CountWords counts words in HTML-ish text, ignoring markup.
func CountWords(text string) int {
	normalized := normalizeText(text)
	if normalized == "" {
		return 0
	}
	return len(strings.Fields(normalized))
}

// CountKeywordOccurrences counts whole-phrase, case-insensitive
// occurrences of keyword in text. Boundaries apply to the phrase as a
// whole, so "cat" never matches inside "catalog".
func CountKeywordOccurrences(text, keyword string) int {
	normalized := normalizeText(text)
	phrase := strings.TrimSpace(nonWordRe.ReplaceAllString(strings.ToLower(keyword), " "))
	phrase = spaceRe.ReplaceAllString(phrase, " ")
	if normalized == "" || phrase == "" {
		return 0
	}
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
	if err != nil {
		return 0
	}
	return len(re.FindAllStringIndex(normalized, -1))
}

// ExtractHeadings returns the plain text of every h2-h6 tag. The h1 is
// excluded because it duplicates the title.
func ExtractHeadings(html string) []string {
	matches := headingRe.FindAllStringSubmatch(html, -1)
	headings := make([]string, 0, len(matches))
	for _, m := range matches {
		if text := strings.TrimSpace(StripTags(m[1])); text != "" {
			headings = append(headings, text)
		}
	}
	return headings
}

// ExtractFirstParagraph returns the plain text of the opening
// paragraph: the first <p> block, else the segment before the first
// blank line, else the first 300 characters of the stripped content.
func ExtractFirstParagraph(html string) string {
	if m := paragraphRe.FindStringSubmatch(html); m != nil {
		return strings.TrimSpace(StripTags(m[1]))
	}
	first := blankLineRe.Split(html, 2)[0]
	if text := strings.TrimSpace(StripTags(first)); text != "" {
		return text
	}
	plain := strings.TrimSpace(StripTags(html))
	runes := []rune(plain)
	if len(runes) > 300 {
		return string(runes[:300])
	}
	return plain
}

// ExtractParagraphs splits content into plain-text paragraphs. <p>
// blocks win; without them block-closing tags and <br> become line
// breaks and blank lines delimit paragraphs.
func ExtractParagraphs(html string) []string {
	var segments []string
	if matches := paragraphRe.FindAllStringSubmatch(html, -1); len(matches) > 0 {
		for _, m := range matches {
			segments = append(segments, m[1])
		}
	} else {
		broken := breakRe.ReplaceAllString(html, "\n\n")
		segments = blankLineRe.Split(broken, -1)
	}

	paragraphs := make([]string, 0, len(segments))
	for _, s := range segments {
		if text := strings.TrimSpace(StripTags(s)); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return paragraphs
}

// ExtractLinks returns every anchor with an href, keeping the raw
// opening tag.
func ExtractLinks(html string) []Link {
	matches := linkRe.FindAllStringSubmatch(html, -1)
	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, Link{Href: m[1], RawTag: m[0]})
	}
	return links
}

// IsInternalLink reports whether href points inside the site. Root
// relative paths are internal; absolute URLs are internal when they
// share the site's base URL ignoring the protocol.
func IsInternalLink(href, siteBaseURL string) bool {
	if strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//") {
		return true
	}
	if siteBaseURL == "" {
		return false
	}
	return strings.HasPrefix(stripProtocol(href), stripProtocol(siteBaseURL))
}

// isExternalLink reports whether href is an absolute http(s) URL that
// is not internal. Fragment, mailto and tel links are neither.
func isExternalLink(href, siteBaseURL string) bool {
	return httpRe.MatchString(href) && !IsInternalLink(href, siteBaseURL)
}

func stripProtocol(u string) string {
	return strings.ToLower(httpRe.ReplaceAllString(u, ""))
}

// isDoFollow reports whether the raw anchor tag lacks a nofollow rel.
func isDoFollow(rawTag string) bool {
	return !nofollowRe.MatchString(rawTag)
}
