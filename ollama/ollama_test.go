package ollama_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/ollama"
	"github.com/ollama/ollama/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient returns a client talking to handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := ollama.NewClient(server.URL, server.Client())
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	t.Run("accepts explicit host", func(t *testing.T) {
		t.Parallel()

		client, err := ollama.NewClient("http://127.0.0.1:11434", nil)

		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("rejects host without scheme", func(t *testing.T) {
		t.Parallel()

		_, err := ollama.NewClient("localhost", nil)

		require.Error(t, err)
		assert.Equal(t, sitechat.EINVALID, sitechat.ErrorCode(err))
	})
}
