package main

import (
	"context"
	"net/http"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/gemini"
	"github.com/fwojciec/sitechat/ollama"
	"google.golang.org/genai"
)

// Backend holds the model services of one provider.
type Backend struct {
	Embedder  sitechat.Embedder
	Generator sitechat.Generator
}

// NewBackend connects to the provider named in opts. An unknown provider
// is EINVALID. A nil httpClient uses http.DefaultClient.
func NewBackend(ctx context.Context, opts BackendOptions, httpClient *http.Client) (*Backend, error) {
	switch sitechat.Provider(opts.Provider) {
	case sitechat.ProviderGemini:
		if opts.GeminiAPIKey == "" {
			return nil, sitechat.Errorf(sitechat.EINVALID,
				"GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:     opts.GeminiAPIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, sitechat.Errorf(sitechat.EUNAVAILABLE, "connect to Gemini API: %v", err)
		}
		return &Backend{
			Embedder:  gemini.NewEmbedder(client, orDefault(opts.EmbedModel, gemini.DefaultEmbedModel)),
			Generator: gemini.NewGenerator(client, orDefault(opts.Model, gemini.DefaultModel)),
		}, nil

	case sitechat.ProviderOllama:
		client, err := ollama.NewClient(opts.OllamaHost, httpClient)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Embedder:  ollama.NewEmbedder(client, orDefault(opts.EmbedModel, ollama.DefaultEmbedModel)),
			Generator: ollama.NewGenerator(client, orDefault(opts.Model, ollama.DefaultModel)),
		}, nil

	default:
		return nil, sitechat.Errorf(sitechat.EINVALID,
			"unsupported provider %q (supported: %s, %s)", opts.Provider, sitechat.ProviderGemini, sitechat.ProviderOllama)
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
