package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/sitechat"
)

// Compile-time interface verification.
var _ sitechat.SiteService = (*SiteService)(nil)

// SiteService implements sitechat.SiteService using SQLite.
type SiteService struct {
	db *DB
}

// NewSiteService creates a new SiteService.
func NewSiteService(db *DB) *SiteService {
	return &SiteService{db: db}
}

// CreateSite creates a new site. CreatedAt is set to the current time.
func (s *SiteService) CreateSite(ctx context.Context, site *sitechat.Site) error {
	if err := site.Validate(); err != nil {
		return err
	}

	site.CreatedAt = time.Now().UTC().Truncate(time.Second)

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO sites (id, url, embed_model, created_at, indexed_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, site.ID, site.URL, site.EmbedModel, formatTime(site.CreatedAt), formatTime(site.IndexedAt))
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sitechat.Errorf(sitechat.ECONFLICT, "site %q already exists", site.ID)
	}
	return nil
}

// FindSiteByID retrieves a site by ID.
func (s *SiteService) FindSiteByID(ctx context.Context, id string) (*sitechat.Site, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, embed_model, created_at, indexed_at
		FROM sites
		WHERE id = ?
	`, id)

	site, err := scanSite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sitechat.Errorf(sitechat.ENOTFOUND, "site not found")
	}
	return site, err
}

// FindSites retrieves all sites, most recently created first.
func (s *SiteService) FindSites(ctx context.Context) ([]*sitechat.Site, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, url, embed_model, created_at, indexed_at
		FROM sites
		ORDER BY created_at DESC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []*sitechat.Site
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}
	return sites, rows.Err()
}

// MarkIndexed sets the site's IndexedAt to the current time.
func (s *SiteService) MarkIndexed(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE sites SET indexed_at = ? WHERE id = ?",
		formatTime(time.Now()), id)
	if err != nil {
		return err
	}
	return requireAffected(result, "site not found")
}

// DeleteSite permanently removes a site. Its chunks are removed by cascade.
func (s *SiteService) DeleteSite(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sites WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(result, "site not found")
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSite(row scanner) (*sitechat.Site, error) {
	var site sitechat.Site
	var createdAt, indexedAt string

	if err := row.Scan(&site.ID, &site.URL, &site.EmbedModel, &createdAt, &indexedAt); err != nil {
		return nil, err
	}

	var err error
	if site.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if site.IndexedAt, err = parseRFC3339(indexedAt, "indexed_at"); err != nil {
		return nil, err
	}
	return &site, nil
}

func requireAffected(result sql.Result, notFound string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sitechat.Errorf(sitechat.ENOTFOUND, "%s", notFound)
	}
	return nil
}
