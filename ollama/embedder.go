package ollama

import (
	"context"

	"github.com/fwojciec/sitechat"
	"github.com/ollama/ollama/api"
)

// Ensure Embedder implements sitechat.Embedder at compile time.
var _ sitechat.Embedder = (*Embedder)(nil)

// Embedder implements sitechat.Embedder using the Ollama embed API.
type Embedder struct {
	client *api.Client
	model  string
}

// NewEmbedder creates a new Embedder for model.
func NewEmbedder(client *api.Client, model string) *Embedder {
	if model == "" {
		model = DefaultEmbedModel
	}
	return &Embedder{client: client, model: model}
}

// Model returns the embedding model identifier.
func (e *Embedder) Model() string { return e.model }

// Embed returns one vector per text from a single batched request.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := e.client.Embed(ctx, &api.EmbedRequest{Model: e.model, Input: texts})
	if err != nil {
		return nil, err
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, sitechat.Errorf(sitechat.EINTERNAL,
			"ollama returned %d embeddings for %d texts", len(resp.Embeddings), len(texts))
	}
	return resp.Embeddings, nil
}
