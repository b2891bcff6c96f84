// Package rod implements sitechat.Fetcher with a headless Chrome browser,
// for sites that render their content with JavaScript.
package rod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/sitechat"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Fetcher defaults.
const (
	DefaultFetchTimeout = 10 * time.Second

	// DefaultRecycleAfter is the number of pages after which the browser is
	// restarted. Chrome's memory use grows with every page it renders.
	DefaultRecycleAfter = 75
)

var _ sitechat.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome. It is safe for concurrent
// use.
type Fetcher struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    int
	closed   bool

	timeout      time.Duration
	recycleAfter int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout bounds the time spent loading a single page.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRecycleAfter sets how many pages a browser renders before it is
// replaced by a fresh one.
func WithRecycleAfter(n int) Option {
	return func(f *Fetcher) {
		f.recycleAfter = n
	}
}

// NewFetcher launches a headless Chrome and returns a Fetcher using it.
// Close must be called to stop the browser.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		recycleAfter: DefaultRecycleAfter,
	}
	for _, opt := range opts {
		opt(f)
	}

	if err := f.launch(); err != nil {
		return nil, err
	}
	return f, nil
}

// Fetch navigates to url and returns the HTML once the page has loaded.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser, err := f.acquire()
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", sitechat.Errorf(sitechat.EUNAVAILABLE, "open page: %v", err)
	}
	defer func() { _ = page.Close() }()

	page = page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return "", fetchError(ctx, url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fetchError(ctx, url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fetchError(ctx, url, err)
	}
	return html, nil
}

// Close stops the browser. It is safe to call more than once.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	return f.shutdown()
}

// LauncherPID returns the process ID of the running browser launcher, or
// zero if there is none.
func (f *Fetcher) LauncherPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.launcher == nil {
		return 0
	}
	return f.launcher.PID()
}

// acquire returns the browser to render the next page with, restarting it
// first if it has rendered recycleAfter pages. A failed restart keeps the
// old browser.
func (f *Fetcher) acquire() (*rod.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, sitechat.Errorf(sitechat.EINVALID, "fetcher is closed")
	}

	if f.recycleAfter > 0 && f.pages >= f.recycleAfter {
		oldBrowser, oldLauncher := f.browser, f.launcher
		if err := f.launch(); err != nil {
			f.browser, f.launcher = oldBrowser, oldLauncher
		} else {
			_ = oldBrowser.Close()
			oldLauncher.Kill()
			f.pages = 0
		}
	}

	f.pages++
	return f.browser, nil
}

// launch starts a browser. Callers hold mu, except NewFetcher.
func (f *Fetcher) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return sitechat.Errorf(sitechat.EUNAVAILABLE, "launch browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return sitechat.Errorf(sitechat.EUNAVAILABLE, "connect to browser: %v", err)
	}

	f.browser, f.launcher = browser, l
	return nil
}

// shutdown stops the browser and its launcher. Callers hold mu.
func (f *Fetcher) shutdown() error {
	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}

// fetchError returns the context's error when it caused err, so callers can
// tell a timeout from a page failure.
func fetchError(ctx context.Context, url string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("fetch %s: %w", url, ctxErr)
	}
	return sitechat.Errorf(sitechat.EUNAVAILABLE, "fetch %s: %v", url, err)
}
