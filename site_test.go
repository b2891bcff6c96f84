package sitechat_test

import (
	"testing"
	"time"

	"github.com/fwojciec/sitechat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"root URL", "https://example.com", "example_com"},
		{"strips www and lowercases host", "https://www.Example.com/", "example_com"},
		{"includes path", "https://www.example.com/docs/", "example_com_docs"},
		{"collapses separator runs", "http://shop.example.co.uk/en-gb//help", "shop_example_co_uk_en_gb_help"},
		{"ignores query and fragment", "https://example.com/faq?lang=en#top", "example_com_faq"},
		{"ignores port", "http://localhost:8080/site", "localhost_site"},
		{"trims surrounding whitespace", "  https://example.com/a  ", "example_com_a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := sitechat.SiteID(tt.url)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSiteID_Invalid(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "example.com", "ftp://example.com", "https://", "://bad"} {
		t.Run(raw, func(t *testing.T) {
			t.Parallel()

			_, err := sitechat.SiteID(raw)

			require.Error(t, err)
			assert.Equal(t, sitechat.EINVALID, sitechat.ErrorCode(err))
		})
	}
}

func TestNewSite(t *testing.T) {
	t.Parallel()

	site, err := sitechat.NewSite("https://www.example.com/docs", "nomic-embed-text")

	require.NoError(t, err)
	assert.Equal(t, "example_com_docs", site.ID)
	assert.Equal(t, "https://www.example.com/docs", site.URL)
	assert.Equal(t, "nomic-embed-text", site.EmbedModel)
	assert.False(t, site.Indexed())
	require.NoError(t, site.Validate())
}

func TestSite_Indexed(t *testing.T) {
	t.Parallel()

	site := &sitechat.Site{IndexedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)}

	assert.True(t, site.Indexed())
}

func TestSite_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires embedding model", func(t *testing.T) {
		t.Parallel()

		site := &sitechat.Site{ID: "example_com", URL: "https://example.com"}

		err := site.Validate()

		require.Error(t, err)
		assert.Equal(t, sitechat.EINVALID, sitechat.ErrorCode(err))
		assert.Contains(t, sitechat.ErrorMessage(err), "embedding model")
	})
}
