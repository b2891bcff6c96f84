package mock

import (
	"context"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.SiteService = (*SiteService)(nil)

// SiteService is a mock implementation of sitechat.SiteService.
type SiteService struct {
	CreateSiteFn   func(ctx context.Context, site *sitechat.Site) error
	FindSiteByIDFn func(ctx context.Context, id string) (*sitechat.Site, error)
	FindSitesFn    func(ctx context.Context) ([]*sitechat.Site, error)
	MarkIndexedFn  func(ctx context.Context, id string) error
	DeleteSiteFn   func(ctx context.Context, id string) error
}

func (s *SiteService) CreateSite(ctx context.Context, site *sitechat.Site) error {
	return s.CreateSiteFn(ctx, site)
}

func (s *SiteService) FindSiteByID(ctx context.Context, id string) (*sitechat.Site, error) {
	return s.FindSiteByIDFn(ctx, id)
}

func (s *SiteService) FindSites(ctx context.Context) ([]*sitechat.Site, error) {
	return s.FindSitesFn(ctx)
}

func (s *SiteService) MarkIndexed(ctx context.Context, id string) error {
	return s.MarkIndexedFn(ctx, id)
}

func (s *SiteService) DeleteSite(ctx context.Context, id string) error {
	return s.DeleteSiteFn(ctx, id)
}
