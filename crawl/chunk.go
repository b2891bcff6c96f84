package crawl

import (
	"context"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitechat"
)

// split cuts pages into chunks in page order, dropping sections whose
// text already appeared earlier on the site.
func (ix *Indexer) split(siteID string, pages []*sitechat.Page) []*sitechat.Chunk {
	seen := make(map[string]bool)
	var chunks []*sitechat.Chunk
	for _, p := range pages {
		for _, sec := range sitechat.SplitMarkdown(p.Content, ix.ChunkSize) {
			hash := contentHash(sec.Content)
			if seen[hash] {
				continue
			}
			seen[hash] = true
			chunks = append(chunks, &sitechat.Chunk{
				SiteID:      siteID,
				SourceURL:   p.URL,
				Title:       p.Title,
				Heading:     sec.Heading,
				Position:    len(chunks),
				Content:     sec.Content,
				ContentHash: hash,
			})
		}
	}
	return chunks
}

// embed fills in chunk embeddings in batches of EmbedBatch.
func (ix *Indexer) embed(ctx context.Context, chunks []*sitechat.Chunk, report ProgressFunc) error {
	batch := ix.EmbedBatch
	if batch <= 0 {
		batch = DefaultEmbedBatch
	}

	for start := 0; start < len(chunks); start += batch {
		end := min(start+batch, len(chunks))

		texts := make([]string, 0, end-start)
		for _, c := range chunks[start:end] {
			texts = append(texts, EmbedText(c))
		}

		vectors, err := ix.Embedder.Embed(ctx, texts)
		if err != nil {
			return fmt.Errorf("embed chunks: %w", err)
		}
		if len(vectors) != len(texts) {
			return sitechat.Errorf(sitechat.EINTERNAL, "embedder returned %d vectors for %d texts", len(vectors), len(texts))
		}
		for i, v := range vectors {
			chunks[start+i].Embedding = v
		}

		report(ProgressEvent{Type: ProgressEmbedding, Completed: end, Total: len(chunks)})
	}
	return nil
}

// EmbedText is the text embedded for c: its content prefixed with the page
// title and heading breadcrumb, which often carry the words a question uses.
func EmbedText(c *sitechat.Chunk) string {
	var parts []string
	if c.Title != "" {
		parts = append(parts, c.Title)
	}
	if c.Heading != "" && c.Heading != c.Title {
		parts = append(parts, c.Heading)
	}
	if len(parts) == 0 {
		return c.Content
	}
	return strings.Join(parts, " > ") + "\n\n" + c.Content
}

func contentHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
