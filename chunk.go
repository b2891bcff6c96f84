package sitechat

import (
	"context"
	"strings"
)

// Chunk represents a section of an indexed page optimized for embedding and retrieval.
type Chunk struct {
	ID          string    `json:"id"`
	SiteID      string    `json:"siteId"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Heading     string    `json:"heading"`  // Heading breadcrumb within the page
	Position    int       `json:"position"` // Order within the site's crawl
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Embedding   []float32 `json:"embedding,omitempty"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.SiteID == "" {
		return Errorf(EINVALID, "chunk site ID required")
	}
	if c.Content == "" {
		return Errorf(EINVALID, "chunk content required")
	}
	if len(c.Embedding) == 0 {
		return Errorf(EINVALID, "chunk embedding required")
	}
	return nil
}

// ChunkService represents a service for managing chunks.
type ChunkService interface {
	// CreateChunks creates multiple chunks in a single transaction.
	CreateChunks(ctx context.Context, chunks []*Chunk) error

	// FindChunks retrieves chunks matching the filter, ordered by position.
	FindChunks(ctx context.Context, filter ChunkFilter) ([]*Chunk, error)

	// CountChunks returns the number of chunks stored for a site.
	CountChunks(ctx context.Context, siteID string) (int, error)
}

// ChunkFilter represents a filter for FindChunks.
type ChunkFilter struct {
	SiteID      *string `json:"siteId"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Match pairs a retrieved chunk with its distance from the query.
// Lower distance means more similar.
type Match struct {
	Chunk    *Chunk  `json:"chunk"`
	Distance float64 `json:"distance"`
}

// Retriever returns the chunks of one indexed site closest to a query.
type Retriever interface {
	// Retrieve returns matches ordered by increasing distance, best first.
	// An index with nothing in it yields an empty result, not an error.
	Retrieve(ctx context.Context, query string) ([]Match, error)
}

// Embedder converts texts into embedding vectors.
type Embedder interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Model returns the embedding model identifier.
	Model() string
}

// JoinContext concatenates chunk texts into a single context block,
// separated by blank lines.
func JoinContext(texts []string) string {
	return strings.Join(texts, "\n\n")
}
