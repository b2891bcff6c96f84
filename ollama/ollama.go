// Package ollama implements text generation and embeddings against a local
// Ollama server.
package ollama

import (
	"net/http"
	"net/url"

	"github.com/fwojciec/sitechat"
	"github.com/ollama/ollama/api"
	"github.com/ollama/ollama/envconfig"
)

// Default model identifiers.
const (
	DefaultModel      = "tinyllama"
	DefaultEmbedModel = "nomic-embed-text"
)

// NewClient returns an Ollama API client for host. An empty host falls
// back to OLLAMA_HOST, then to the local default.
func NewClient(host string, httpClient *http.Client) (*api.Client, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	base := envconfig.Host()
	if host != "" {
		u, err := url.Parse(host)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, sitechat.Errorf(sitechat.EINVALID, "invalid ollama host %q", host)
		}
		base = u
	}

	return api.NewClient(base, httpClient), nil
}
