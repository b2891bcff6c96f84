package sqlite

import (
	"context"
	"strings"

	"github.com/fwojciec/sitechat"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ sitechat.ChunkService = (*ChunkService)(nil)

// ChunkService implements sitechat.ChunkService using SQLite.
type ChunkService struct {
	db *DB
}

// NewChunkService creates a new ChunkService.
func NewChunkService(db *DB) *ChunkService {
	return &ChunkService{db: db}
}

// CreateChunks creates chunks in a single transaction. IDs are generated,
// and content hashes are computed when not already set. Either all chunks
// are stored or none are.
func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*sitechat.Chunk) error {
	for _, c := range chunks {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (id, site_id, source_url, title, heading, position, content, content_hash, embedding)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range chunks {
		c.ID = uuid.New().String()
		if c.ContentHash == "" {
			c.ContentHash = hashContent(c.Content)
		}
		if _, err := stmt.ExecContext(ctx, c.ID, c.SiteID, c.SourceURL, c.Title, c.Heading,
			c.Position, c.Content, c.ContentHash, encodeEmbedding(c.Embedding)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindChunks retrieves chunks matching the filter, ordered by position.
func (s *ChunkService) FindChunks(ctx context.Context, filter sitechat.ChunkFilter) ([]*sitechat.Chunk, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, site_id, source_url, title, heading, position, content, content_hash, embedding FROM chunks WHERE 1=1")

	if filter.SiteID != nil {
		query.WriteString(" AND site_id = ?")
		args = append(args, *filter.SiteID)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY position ASC, id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []*sitechat.Chunk
	for rows.Next() {
		c, err := scanChunk(rows)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}
	return chunks, rows.Err()
}

// CountChunks returns the number of chunks stored for a site.
func (s *ChunkService) CountChunks(ctx context.Context, siteID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks WHERE site_id = ?", siteID).Scan(&n)
	return n, err
}

func scanChunk(row scanner) (*sitechat.Chunk, error) {
	var c sitechat.Chunk
	var embedding []byte

	if err := row.Scan(&c.ID, &c.SiteID, &c.SourceURL, &c.Title, &c.Heading,
		&c.Position, &c.Content, &c.ContentHash, &embedding); err != nil {
		return nil, err
	}

	var err error
	if c.Embedding, err = decodeEmbedding(embedding); err != nil {
		return nil, err
	}
	return &c, nil
}
