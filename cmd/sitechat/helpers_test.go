package main_test

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/fwojciec/sitechat"
	main "github.com/fwojciec/sitechat/cmd/sitechat"
	"github.com/fwojciec/sitechat/crawl"
	"github.com/fwojciec/sitechat/mock"
)

const testModel = "test-embed"

func indexedSite() *sitechat.Site {
	return &sitechat.Site{
		ID:         "example_com",
		URL:        "https://example.com",
		EmbedModel: testModel,
		CreatedAt:  time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		IndexedAt:  time.Date(2025, 1, 15, 10, 5, 0, 0, time.UTC),
	}
}

func newDeps(stdin string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdin:  strings.NewReader(stdin),
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}

func testEmbedder() *mock.Embedder {
	return &mock.Embedder{
		EmbedFn: func(_ context.Context, texts []string) ([][]float32, error) {
			vectors := make([][]float32, len(texts))
			for i := range texts {
				vectors[i] = []float32{1, 0}
			}
			return vectors, nil
		},
		ModelFn: func() string { return testModel },
	}
}

// testIndexer crawls pages, a url → html map listed by the sitemap.
func testIndexer(pages map[string]string, chunks sitechat.ChunkService) *crawl.Indexer {
	var urls []string
	for u := range pages {
		urls = append(urls, u)
	}
	return &crawl.Indexer{
		Sitemaps: &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string, _ *sitechat.URLFilter) ([]string, error) {
				return urls, nil
			},
		},
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return pages[url], nil
			},
		},
		Extractors: []sitechat.Extractor{&mock.Extractor{
			ExtractFn: func(html string) (*sitechat.ExtractResult, error) {
				return &sitechat.ExtractResult{Title: "Home", ContentHTML: html}, nil
			},
		}},
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) { return html, nil },
		},
		LinkSelector: &mock.LinkSelector{
			ExtractLinksFn: func(_ string, _ string) ([]sitechat.DiscoveredLink, error) { return nil, nil },
		},
		Embedder:    testEmbedder(),
		Chunks:      chunks,
		RetryDelays: []time.Duration{0},
	}
}
