package gemini

import (
	"context"

	"github.com/fwojciec/sitechat"
	"google.golang.org/genai"
)

// maxEmbedBatch is the number of texts Gemini accepts per embedding request.
const maxEmbedBatch = 100

// Ensure Embedder implements sitechat.Embedder at compile time.
var _ sitechat.Embedder = (*Embedder)(nil)

// Embedder implements sitechat.Embedder using Gemini embedding models.
type Embedder struct {
	client *genai.Client
	model  string
}

// NewEmbedder creates a new Embedder for model.
func NewEmbedder(client *genai.Client, model string) *Embedder {
	if model == "" {
		model = DefaultEmbedModel
	}
	return &Embedder{client: client, model: model}
}

// Model returns the embedding model identifier.
func (e *Embedder) Model() string { return e.model }

// Embed returns one vector per text, requesting them in batches.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += maxEmbedBatch {
		batch := texts[start:min(start+maxEmbedBatch, len(texts))]

		contents := make([]*genai.Content, len(batch))
		for i, text := range batch {
			contents[i] = genai.NewContentFromText(text, genai.RoleUser)
		}

		resp, err := e.client.Models.EmbedContent(ctx, e.model, contents, nil)
		if err != nil {
			return nil, err
		}
		if resp == nil || len(resp.Embeddings) != len(batch) {
			return nil, sitechat.Errorf(sitechat.EINTERNAL, "gemini returned wrong number of embeddings")
		}
		for _, emb := range resp.Embeddings {
			vectors = append(vectors, emb.Values)
		}
	}
	return vectors, nil
}
