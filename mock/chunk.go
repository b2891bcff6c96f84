package mock

import (
	"context"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.ChunkService = (*ChunkService)(nil)

// ChunkService is a mock implementation of sitechat.ChunkService.
type ChunkService struct {
	CreateChunksFn func(ctx context.Context, chunks []*sitechat.Chunk) error
	FindChunksFn   func(ctx context.Context, filter sitechat.ChunkFilter) ([]*sitechat.Chunk, error)
	CountChunksFn  func(ctx context.Context, siteID string) (int, error)
}

func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*sitechat.Chunk) error {
	return s.CreateChunksFn(ctx, chunks)
}

func (s *ChunkService) FindChunks(ctx context.Context, filter sitechat.ChunkFilter) ([]*sitechat.Chunk, error) {
	return s.FindChunksFn(ctx, filter)
}

func (s *ChunkService) CountChunks(ctx context.Context, siteID string) (int, error) {
	return s.CountChunksFn(ctx, siteID)
}
