package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seoscore/seoscore/internal/service/seo"
)

func TestToAnalysisInput(t *testing.T) {
	page := &PageData{
		URL:             "https://example.com/green-tea",
		Title:           "Green Tea Benefits",
		MetaDescription: "All about green tea.",
		ContentHTML:     "<p>Green tea is healthy.</p>",
		Images:          []seo.Image{{Alt: "green tea cup"}},
		Social:          seo.SocialData{Title: "Green Tea"},
	}

	input := page.ToAnalysisInput("green tea")

	assert.Equal(t, "green tea", input.FocusKeyword)
	assert.Equal(t, page.Title, input.Title)
	assert.Equal(t, page.ContentHTML, input.Content)
	assert.Equal(t, page.MetaDescription, input.MetaDescription)
	assert.Equal(t, page.URL, input.URL)
	assert.Equal(t, page.Images, input.Images)
	assert.Equal(t, page.Social, input.Social)
}
