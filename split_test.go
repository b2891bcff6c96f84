package sitechat_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for empty markdown", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, sitechat.SplitMarkdown("", 100))
		assert.Nil(t, sitechat.SplitMarkdown("  \n\n ", 100))
	})

	t.Run("keeps short document in one section", func(t *testing.T) {
		t.Parallel()

		sections := sitechat.SplitMarkdown("Intro paragraph.\n\nSecond paragraph.", 1000)

		require.Len(t, sections, 1)
		assert.Equal(t, "Intro paragraph.\n\nSecond paragraph.", sections[0].Content)
		assert.Empty(t, sections[0].Heading)
	})

	t.Run("starts a new section at each heading", func(t *testing.T) {
		t.Parallel()

		markdown := "# Pricing\n\nPlans are monthly.\n\n## Plans\n\n- Basic\n- Pro"

		sections := sitechat.SplitMarkdown(markdown, 1000)

		require.Len(t, sections, 2)
		assert.Equal(t, "Pricing", sections[0].Heading)
		assert.Equal(t, "# Pricing\n\nPlans are monthly.", sections[0].Content)
		assert.Equal(t, "Pricing > Plans", sections[1].Heading)
		assert.Equal(t, "## Plans\n\n- Basic\n- Pro", sections[1].Content)
	})

	t.Run("resets deeper headings when a shallower one appears", func(t *testing.T) {
		t.Parallel()

		markdown := "# A\n## B\n### C\ntext\n## D\nmore"

		sections := sitechat.SplitMarkdown(markdown, 1000)

		require.Len(t, sections, 4)
		assert.Equal(t, "A > B > C", sections[2].Heading)
		assert.Equal(t, "A > D", sections[3].Heading)
	})

	t.Run("preserves list markers verbatim", func(t *testing.T) {
		t.Parallel()

		markdown := "Fruits:\n\n- Apples\n* Bananas\n1. Cherries"

		sections := sitechat.SplitMarkdown(markdown, 1000)

		require.Len(t, sections, 1)
		assert.Contains(t, sections[0].Content, "\n- Apples\n* Bananas\n1. Cherries")
	})

	t.Run("breaks oversized content at paragraph boundaries", func(t *testing.T) {
		t.Parallel()

		first := strings.Repeat("a", 40)
		second := strings.Repeat("b", 40)
		markdown := first + "\n\n" + second

		sections := sitechat.SplitMarkdown(markdown, 50)

		require.Len(t, sections, 2)
		assert.Equal(t, first, sections[0].Content)
		assert.Equal(t, second, sections[1].Content)
	})

	t.Run("ignores headings inside code fences", func(t *testing.T) {
		t.Parallel()

		markdown := "# Setup\n```sh\n# not a heading\n```"

		sections := sitechat.SplitMarkdown(markdown, 1000)

		require.Len(t, sections, 1)
		assert.Equal(t, "Setup", sections[0].Heading)
	})
}
