package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Sites    sitechat.SiteService
	Chunks   sitechat.ChunkService
	Embedder sitechat.Embedder
	Indexer  *crawl.Indexer

	// NewAnswerer returns the answering pipeline for an indexed site.
	NewAnswerer func(site *sitechat.Site) (sitechat.Answerer, error)

	// Metrics serves the program's Prometheus metrics.
	Metrics http.Handler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `help:"Database path (default ~/.sitechat/sitechat.db)" env:"SITECHAT_DB"`
	Verbose bool   `short:"v" help:"Log backend calls to stderr"`
	TopK    int    `name:"top-k" default:"8" help:"Chunks retrieved per question"`

	Backend BackendOptions `embed:""`

	Index  IndexCmd  `cmd:"" help:"Crawl and index a website"`
	Ask    AskCmd    `cmd:"" help:"Ask one question about an indexed website"`
	Chat   ChatCmd   `cmd:"" help:"Chat about an indexed website"`
	Serve  ServeCmd  `cmd:"" help:"Serve questions about an indexed website over HTTP"`
	List   ListCmd   `cmd:"" help:"List indexed websites"`
	Delete DeleteCmd `cmd:"" help:"Delete a website's index"`
}

// BackendOptions selects and configures the language model backend.
type BackendOptions struct {
	Provider     string `default:"ollama" env:"SITECHAT_PROVIDER" help:"Model provider (gemini or ollama)"`
	Model        string `env:"SITECHAT_MODEL" help:"Chat model (provider default if empty)"`
	EmbedModel   string `name:"embed-model" env:"SITECHAT_EMBED_MODEL" help:"Embedding model (provider default if empty)"`
	GeminiAPIKey string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	OllamaHost   string `name:"ollama-host" help:"Ollama server URL (default OLLAMA_HOST or local)"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	URL         string   `arg:"" help:"Website URL"`
	Force       bool     `short:"f" help:"Delete the existing index and re-index"`
	Render      bool     `help:"Render pages with headless Chrome"`
	Include     []string `name:"include" help:"Only index URLs matching regex (repeatable)"`
	Exclude     []string `name:"exclude" help:"Skip URLs matching regex (repeatable)"`
	Concurrency int      `short:"c" default:"5" help:"Concurrent fetch limit"`
	MaxPages    int      `name:"max-pages" default:"500" help:"Maximum pages to index"`
	ChunkSize   int      `name:"chunk-size" default:"1200" help:"Chunk size in characters"`
	RateLimit   float64  `name:"rate" default:"2" help:"Requests per second per host"`
	SavePages   string   `name:"save-pages" type:"path" help:"Also write the crawled pages as markdown to this directory"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	URL      string        `arg:"" help:"Indexed website URL"`
	Question string        `arg:"" help:"Question to ask"`
	Timeout  time.Duration `default:"2m" help:"Time limit for answering"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	URL     string        `arg:"" help:"Indexed website URL"`
	Timeout time.Duration `default:"2m" help:"Time limit for each answer"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	URL     string        `arg:"" help:"Indexed website URL"`
	Addr    string        `default:":8080" help:"Listen address"`
	Timeout time.Duration `default:"2m" help:"Time limit for each answer"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	URL   string `arg:"" help:"Website URL"`
	Force bool   `help:"Confirm deletion"`
}
