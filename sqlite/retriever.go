package sqlite

import (
	"cmp"
	"context"
	"slices"

	"github.com/fwojciec/sitechat"
)

// DefaultRetrieveLimit is the number of matches returned when no limit is set.
const DefaultRetrieveLimit = 8

// Compile-time interface verification.
var _ sitechat.Retriever = (*Retriever)(nil)

// Retriever finds the chunks of one site nearest to a query by cosine
// distance. It scans every chunk of the site, which is fast enough for
// the few thousand chunks a crawled website produces.
type Retriever struct {
	db       *DB
	embedder sitechat.Embedder
	site     *sitechat.Site
	limit    int
}

// NewRetriever creates a Retriever over site's chunks. Queries are embedded
// with embedder, which must use the model the site was indexed with.
func NewRetriever(db *DB, embedder sitechat.Embedder, site *sitechat.Site, limit int) *Retriever {
	if limit <= 0 {
		limit = DefaultRetrieveLimit
	}
	return &Retriever{
		db:       db,
		embedder: embedder,
		site:     site,
		limit:    limit,
	}
}

// Retrieve returns up to limit matches ordered by increasing distance.
// Ties keep crawl order. A site without chunks yields no matches.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]sitechat.Match, error) {
	if model := r.embedder.Model(); model != r.site.EmbedModel {
		return nil, sitechat.Errorf(sitechat.EINVALID,
			"site %q was indexed with embedding model %q, not %q", r.site.ID, r.site.EmbedModel, model)
	}

	chunks, err := NewChunkService(r.db).FindChunks(ctx, sitechat.ChunkFilter{SiteID: &r.site.ID})
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	if len(vectors) != 1 {
		return nil, sitechat.Errorf(sitechat.EINTERNAL, "expected 1 query embedding, got %d", len(vectors))
	}
	q := vectors[0]

	matches := make([]sitechat.Match, 0, len(chunks))
	for _, c := range chunks {
		if len(c.Embedding) != len(q) {
			return nil, sitechat.Errorf(sitechat.EINVALID,
				"embedding dimension mismatch: chunk has %d, query has %d", len(c.Embedding), len(q))
		}
		matches = append(matches, sitechat.Match{Chunk: c, Distance: cosineDistance(q, c.Embedding)})
	}

	slices.SortStableFunc(matches, func(a, b sitechat.Match) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	return matches[:min(len(matches), r.limit)], nil
}
