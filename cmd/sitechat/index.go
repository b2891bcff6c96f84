package main

import (
	"fmt"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/crawl"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	site, err := sitechat.NewSite(c.URL, deps.Embedder.Model())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitechat.ErrorMessage(err))
		return err
	}

	existing, err := deps.Sites.FindSiteByID(deps.Ctx, site.ID)
	switch {
	case sitechat.ErrorCode(err) == sitechat.ENOTFOUND:
	case err != nil:
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitechat.ErrorMessage(err))
		return err
	case existing.Indexed() && !c.Force:
		fmt.Fprintf(deps.Stdout, "Site already indexed (%s). Use --force to re-index.\n", existing.ID)
		return nil
	default:
		// Forced, or left over from a crawl that did not finish.
		if err := deps.Sites.DeleteSite(deps.Ctx, existing.ID); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitechat.ErrorMessage(err))
			return err
		}
		if c.Force {
			fmt.Fprintln(deps.Stdout, "Previous index removed. Re-indexing website...")
		}
	}

	if err := deps.Sites.CreateSite(deps.Ctx, site); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitechat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexing %s\n", site.URL)
	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			if event.Total > 0 {
				fmt.Fprintf(deps.Stdout, "  Found %d URLs in sitemap\n", event.Total)
			} else {
				fmt.Fprintln(deps.Stdout, "  No sitemap, following links")
			}
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d] %s\n", event.Completed, crawl.TruncateURL(event.URL, 70))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.URL, sitechat.ErrorMessage(event.Error))
		case crawl.ProgressEmbedding:
			fmt.Fprintf(deps.Stdout, "  Embedded %d/%d chunks\n", event.Completed, event.Total)
		}
	}

	result, err := deps.Indexer.IndexSite(deps.Ctx, site, progress)
	if err != nil {
		// Leave nothing behind so the next attempt starts clean.
		_ = deps.Sites.DeleteSite(deps.Ctx, site.ID)
		fmt.Fprintln(deps.Stderr, "Website could not be indexed. It may be empty, blocked, or not suitable for crawling.")
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitechat.ErrorMessage(err))
		return err
	}

	if err := deps.Sites.MarkIndexed(deps.Ctx, site.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitechat.ErrorMessage(err))
		return err
	}

	summary := fmt.Sprintf("Indexed %d pages into %d chunks (%s", result.Pages, result.Chunks, crawl.FormatBytes(result.Bytes))
	if result.Tokens > 0 {
		summary += ", " + crawl.FormatTokens(result.Tokens)
	}
	summary += ")"
	if result.Failed > 0 {
		summary += fmt.Sprintf(", %d pages failed", result.Failed)
	}
	fmt.Fprintln(deps.Stdout, summary)
	return nil
}
