package sitechat

import (
	"context"
	"net/url"
	"strings"
	"time"
	"unicode"
)

// Site represents a website that has been (or is being) indexed.
type Site struct {
	// ID is derived from the URL with SiteID.
	ID  string `json:"id"`
	URL string `json:"url"`

	// EmbedModel is the embedding model the site's chunks were embedded
	// with. Queries must be embedded with the same model.
	EmbedModel string `json:"embedModel"`

	CreatedAt time.Time `json:"createdAt"`
	IndexedAt time.Time `json:"indexedAt"`
}

// Indexed reports whether a crawl for the site completed.
func (s *Site) Indexed() bool {
	return !s.IndexedAt.IsZero()
}

// Validate returns an error if the site contains invalid fields.
func (s *Site) Validate() error {
	if s.ID == "" {
		return Errorf(EINVALID, "site ID required")
	}
	if s.URL == "" {
		return Errorf(EINVALID, "site URL required")
	}
	if s.EmbedModel == "" {
		return Errorf(EINVALID, "site embedding model required")
	}
	return nil
}

// NewSite returns a site for rawURL with its ID derived from the URL.
func NewSite(rawURL, embedModel string) (*Site, error) {
	id, err := SiteID(rawURL)
	if err != nil {
		return nil, err
	}
	return &Site{ID: id, URL: rawURL, EmbedModel: embedModel}, nil
}

// SiteID derives the storage key for a website from its URL.
// The host is lowercased and stripped of a leading "www.", the path is
// appended, and every run of non-alphanumeric characters becomes "_".
// For example https://www.Example.com/docs/ becomes example_com_docs.
func SiteID(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", Errorf(EINVALID, "invalid site URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", Errorf(EINVALID, "site URL %q must use http or https", rawURL)
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host == "" {
		return "", Errorf(EINVALID, "site URL %q has no host", rawURL)
	}

	var sb strings.Builder
	pendingSep := false
	for _, r := range host + "/" + strings.ToLower(u.Path) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingSep && sb.Len() > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(r)
			pendingSep = false
			continue
		}
		pendingSep = true
	}
	return sb.String(), nil
}

// SiteService represents a service for managing indexed sites.
type SiteService interface {
	// CreateSite creates a new site.
	// Returns ECONFLICT if a site with the same ID already exists.
	CreateSite(ctx context.Context, site *Site) error

	// FindSiteByID retrieves a site by ID.
	// Returns ENOTFOUND if site does not exist.
	FindSiteByID(ctx context.Context, id string) (*Site, error)

	// FindSites retrieves all sites, most recently created first.
	FindSites(ctx context.Context) ([]*Site, error)

	// MarkIndexed records that a crawl of the site completed.
	// Returns ENOTFOUND if site does not exist.
	MarkIndexed(ctx context.Context, id string) error

	// DeleteSite permanently removes a site and all of its chunks.
	// Returns ENOTFOUND if site does not exist.
	DeleteSite(ctx context.Context, id string) error
}
