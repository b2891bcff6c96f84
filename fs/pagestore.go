// Package fs stores markdown snapshots of indexed pages on disk.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.PageStore = (*FileStore)(nil)

// FileStore implements sitechat.PageStore with atomic update semantics.
// Pages are saved to a temporary directory which replaces the output
// directory on Commit.
type FileStore struct {
	baseDir string
	name    string

	// Now returns the crawl date written to each page.
	Now func() time.Time
}

// NewFileStore creates a store that writes to baseDir/name.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
		Now:     time.Now,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes page to the temporary directory at the path derived from
// its URL.
func (s *FileStore) Save(ctx context.Context, page *sitechat.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := URLToPath(page.URL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return sitechat.Errorf(sitechat.EINTERNAL, "create page directory: %v", err)
	}
	if err := os.WriteFile(fullPath, []byte(s.format(page)), 0644); err != nil {
		return sitechat.Errorf(sitechat.EINTERNAL, "write page: %v", err)
	}
	return nil
}

// format renders page as markdown with YAML frontmatter.
func (s *FileStore) format(page *sitechat.Page) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(page.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(page.Title)
	b.WriteString("\ncrawled: ")
	b.WriteString(s.Now().Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(page.Content)
	return b.String()
}

// Commit replaces the output directory with the saved pages.
func (s *FileStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return sitechat.Errorf(sitechat.EINTERNAL, "remove previous pages: %v", err)
	}
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return sitechat.Errorf(sitechat.EINTERNAL, "move pages into place: %v", err)
	}
	return nil
}

// Abort discards the saved pages. The output directory is left untouched.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// URLToPath converts a page URL to a relative file path.
// Example: https://example.com/help/returns → help/returns.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", sitechat.Errorf(sitechat.EINVALID, "invalid page URL %q", rawURL)
	}

	path := strings.TrimPrefix(u.Path, "/")
	if path == "" {
		return "index.md", nil
	}
	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}
	return strings.TrimSuffix(path, ".html") + ".md", nil
}
