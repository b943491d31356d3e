package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"plain text", "hello world", 2},
		{"html is stripped", "<p>Xin <b>chào</b> bạn</p>", 3},
		{"punctuation ignored", "one, two. three!", 3},
		{"empty", "", 0},
		{"only tags", "<div><span></span></div>", 0},
		{"collapsed whitespace", "a   b\n\nc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountWords(tt.input))
		})
	}
}

func TestCountKeywordOccurrences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keyword  string
		expected int
	}{
		{"whole word only", "cat catalog cats", "cat", 1},
		{"case insensitive", "Cat likes CAT food", "cat", 2},
		{"phrase keyword", "a seo guide and another seo guide", "seo guide", 2},
		{"html stripped first", "<p>cat</p><p>cat</p>", "cat", 2},
		{"ascii folded keyword", "dien thoai tot, dien thoai re", "dien thoai", 2},
		{"no match", "dogs everywhere", "cat", 0},
		{"empty keyword", "some text", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountKeywordOccurrences(tt.text, tt.keyword))
		})
	}
}

func TestExtractHeadings(t *testing.T) {
	content := `<h1>Page title</h1><h2>First</h2><p>text</p><h3 class="x">Second</h3><h6>Third</h6>`
	headings := ExtractHeadings(content)

	assert.Equal(t, []string{"First", "Second", "Third"}, headings)
}

func TestExtractFirstParagraph(t *testing.T) {
	t.Run("first p tag wins", func(t *testing.T) {
		content := `<h2>Intro</h2><p>opening words</p><p>second paragraph</p>`
		assert.Equal(t, "opening words", ExtractFirstParagraph(content))
	})

	t.Run("plain text falls back to first block", func(t *testing.T) {
		content := "opening block\n\nrest of the text"
		assert.Equal(t, "opening block", ExtractFirstParagraph(content))
	})

	t.Run("empty content", func(t *testing.T) {
		assert.Equal(t, "", ExtractFirstParagraph(""))
	})
}

func TestExtractLinks(t *testing.T) {
	content := `<p><a href="/about">about</a> and <a href="https://golang.org" rel="nofollow">go</a></p>`
	links := ExtractLinks(content)

	assert.Len(t, links, 2)
	assert.Equal(t, "/about", links[0].Href)
	assert.Equal(t, "https://golang.org", links[1].Href)
	assert.True(t, isDoFollow(links[0].RawTag))
	assert.False(t, isDoFollow(links[1].RawTag))
}

func TestIsInternalLink(t *testing.T) {
	base := "https://example.com"

	tests := []struct {
		name     string
		href     string
		internal bool
	}{
		{"root relative", "/blog/post", true},
		{"same host absolute", "https://example.com/blog", true},
		{"same host no scheme match", "http://example.com/about", true},
		{"other host", "https://other.com/page", false},
		{"protocol relative other host", "//cdn.other.com/a.js", false},
		{"anchor", "#section", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.internal, IsInternalLink(tt.href, base))
		})
	}
}

func TestIsExternalLink(t *testing.T) {
	base := "https://example.com"

	assert.True(t, isExternalLink("https://golang.org", base))
	assert.False(t, isExternalLink("https://example.com/page", base))
	assert.False(t, isExternalLink("/relative", base))
	assert.False(t, isExternalLink("mailto:team@example.com", base))
}
