package readability_test

import (
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pricingPage = `<!DOCTYPE html>
<html>
<head><title>Pricing</title></head>
<body>
<nav><a href="/">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article>
<h1>Pricing Plans</h1>
<p>Every plan includes unlimited projects, daily backups and email support from our team in Leeds.</p>
<h2>Monthly Billing Options</h2>
<p>Monthly plans can be cancelled at any time and are billed on the first day of each month.</p>
<ul>
<li>Starter plan at ten pounds</li>
<li>Team plan at forty pounds</li>
</ul>
</article>
<footer><p>Footer copyright text</p></footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := readability.NewExtractor().Extract("")

		require.Error(t, err)
		assert.Equal(t, sitechat.EINVALID, sitechat.ErrorCode(err))
	})

	t.Run("extracts title", func(t *testing.T) {
		t.Parallel()

		result, err := readability.NewExtractor().Extract(pricingPage)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("keeps article structure", func(t *testing.T) {
		t.Parallel()

		result, err := readability.NewExtractor().Extract(pricingPage)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "unlimited projects")
		assert.Contains(t, result.ContentHTML, "Monthly Billing Options")
		assert.Contains(t, result.ContentHTML, "<li")
	})

	t.Run("drops navigation and footer", func(t *testing.T) {
		t.Parallel()

		result, err := readability.NewExtractor().Extract(pricingPage)

		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "Home Nav Link")
		assert.NotContains(t, result.ContentHTML, "Footer copyright text")
	})
}
