package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seoscore/seoscore/internal/service/seo"
)

func TestResultKey(t *testing.T) {
	base := seo.AnalysisInput{
		Title:        "A title",
		Content:      "<p>some content</p>",
		FocusKeyword: "green tea",
	}

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, ResultKey(base), ResultKey(base))
	})

	t.Run("keyword normalization is folded into the key", func(t *testing.T) {
		variant := base
		variant.FocusKeyword = "  Green TEA  "
		assert.Equal(t, ResultKey(base), ResultKey(variant))
	})

	t.Run("content changes the key", func(t *testing.T) {
		variant := base
		variant.Content = "<p>other content</p>"
		assert.NotEqual(t, ResultKey(base), ResultKey(variant))
	})

	t.Run("key carries the prefix", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(ResultKey(base), KeyPrefixResult))
	})
}

func TestNilClientDegradesToNoop(t *testing.T) {
	repo := NewRepository(nil, 0)
	input := seo.AnalysisInput{FocusKeyword: "tea"}
	key := ResultKey(input)

	assert.NoError(t, repo.CacheResult(key, &seo.Result{Score: 10}))

	result, err := repo.GetResult(key)
	assert.NoError(t, err)
	assert.Nil(t, result)
}
