package sitechat_test

import (
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewURLFilter(t *testing.T) {
	t.Parallel()

	t.Run("returns nil without patterns", func(t *testing.T) {
		t.Parallel()

		f, err := sitechat.NewURLFilter(nil, nil)

		require.NoError(t, err)
		assert.Nil(t, f)
		assert.True(t, f.Match("https://example.com/anything"))
	})

	t.Run("rejects invalid pattern", func(t *testing.T) {
		t.Parallel()

		_, err := sitechat.NewURLFilter([]string{"("}, nil)

		require.Error(t, err)
		assert.Equal(t, sitechat.EINVALID, sitechat.ErrorCode(err))
	})
}

func TestURLFilter_Match(t *testing.T) {
	t.Parallel()

	f, err := sitechat.NewURLFilter([]string{`/docs/`, `/faq`}, []string{`/docs/archive/`})
	require.NoError(t, err)

	assert.True(t, f.Match("https://example.com/docs/intro"))
	assert.True(t, f.Match("https://example.com/faq"))
	assert.False(t, f.Match("https://example.com/blog/post"))
	assert.False(t, f.Match("https://example.com/docs/archive/old"))
}
