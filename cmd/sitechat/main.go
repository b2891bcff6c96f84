package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/crawl"
	"github.com/fwojciec/sitechat/fs"
	"github.com/fwojciec/sitechat/gemini"
	"github.com/fwojciec/sitechat/goquery"
	"github.com/fwojciec/sitechat/htmltomarkdown"
	sitechathttp "github.com/fwojciec/sitechat/http"
	"github.com/fwojciec/sitechat/prometheus"
	"github.com/fwojciec/sitechat/qa"
	"github.com/fwojciec/sitechat/readability"
	"github.com/fwojciec/sitechat/rod"
	sitechatslog "github.com/fwojciec/sitechat/slog"
	"github.com/fwojciec/sitechat/sqlite"
	"github.com/fwojciec/sitechat/trafilatura"
	"github.com/joho/godotenv"
	prom "github.com/prometheus/client_golang/prometheus"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()
	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Registry collects the program's Prometheus metrics.
	Registry *prom.Registry
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{Registry: prom.NewRegistry()}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run parses args, wires the services the chosen command needs and runs it.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitechat"),
		kong.Description("Answer questions strictly from the content of a website."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitechat --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Command()

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	dbPath := cli.DB
	if dbPath == "" {
		dbPath = defaultDBPath()
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITECHAT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	deps := &Dependencies{
		Ctx:     ctx,
		Stdin:   stdin,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		Sites:   sqlite.NewSiteService(m.DB),
		Chunks:  sqlite.NewChunkService(m.DB),
		Metrics: prometheus.Handler(m.Registry),
	}

	if needsBackend(cmd) {
		backend, err := NewBackend(ctx, cli.Backend, nil)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", sitechat.ErrorMessage(err))
			return err
		}

		embedder := sitechatslog.NewLoggingEmbedder(backend.Embedder, logger)
		generator := sitechatslog.NewLoggingGenerator(backend.Generator, logger)
		metrics := prometheus.NewMetrics(m.Registry)
		deps.Embedder = embedder

		deps.NewAnswerer = func(site *sitechat.Site) (sitechat.Answerer, error) {
			retriever := sitechatslog.NewLoggingRetriever(
				sqlite.NewRetriever(m.DB, embedder, site, cli.TopK), logger)
			engine, err := qa.NewEngine(retriever, generator, qa.DefaultConfig())
			if err != nil {
				return nil, err
			}
			return prometheus.NewAnswerer(sitechatslog.NewLoggingAnswerer(engine, logger), metrics), nil
		}

		if cmd == "index <url>" {
			indexer, closeFn, err := m.newIndexer(&cli.Index, embedder, logger)
			if err != nil {
				fmt.Fprintf(stderr, "error: %s\n", sitechat.ErrorMessage(err))
				return err
			}
			defer closeFn()
			deps.Indexer = indexer
		}
	}

	return kongCtx.Run(deps)
}

// newIndexer wires the crawl pipeline for the index command.
func (m *Main) newIndexer(c *IndexCmd, embedder sitechat.Embedder, logger *slog.Logger) (*crawl.Indexer, func(), error) {
	var fetcher sitechat.Fetcher = sitechathttp.NewFetcher()
	if c.Render {
		f, err := rod.NewFetcher()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		fetcher = f
	}
	fetcher = sitechatslog.NewLoggingFetcher(fetcher, logger)

	filter, err := sitechat.NewURLFilter(c.Include, c.Exclude)
	if err != nil {
		return nil, nil, err
	}

	ix := &crawl.Indexer{
		Sitemaps: sitechatslog.NewLoggingSitemapService(sitechathttp.NewSitemapService(nil), logger),
		Fetcher:  fetcher,
		Extractors: []sitechat.Extractor{
			trafilatura.NewExtractor(),
			readability.NewExtractor(),
		},
		Converter:    htmltomarkdown.NewConverter(),
		LinkSelector: goquery.NewLinkSelector(),
		RateLimiter:  crawl.NewDomainLimiter(c.RateLimit),
		Embedder:     embedder,
		Chunks:       sqlite.NewChunkService(m.DB),
		TokenCounter: newTokenCounter(logger),
		Filter:       filter,
		Concurrency:  c.Concurrency,
		MaxPages:     c.MaxPages,
		ChunkSize:    c.ChunkSize,
	}
	if c.SavePages != "" {
		dir := filepath.Clean(c.SavePages)
		ix.Pages = fs.NewFileStore(filepath.Dir(dir), filepath.Base(dir))
	}
	return ix, func() { _ = fetcher.Close() }, nil
}

// newTokenCounter returns the Gemini tokenizer used to report how much text
// an index holds, whatever the provider, or nil if it cannot be loaded.
func newTokenCounter(logger *slog.Logger) sitechat.TokenCounter {
	tc, err := gemini.NewTokenCounter(gemini.DefaultModel)
	if err != nil {
		logger.Warn("token counting disabled", "err", err)
		return nil
	}
	return tc
}

// needsBackend reports whether cmd talks to a language model backend.
func needsBackend(cmd string) bool {
	switch cmd {
	case "index <url>", "ask <url> <question>", "chat <url>", "serve <url>":
		return true
	}
	return false
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sitechat.db"
	}
	dir := filepath.Join(home, ".sitechat")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sitechat.db")
}
