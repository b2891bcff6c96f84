package main

import (
	"fmt"

	"github.com/fwojciec/sitechat"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	sites, err := deps.Sites.FindSites(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitechat.ErrorMessage(err))
		return err
	}

	if len(sites) == 0 {
		fmt.Fprintln(deps.Stdout, "No sites found. Use 'sitechat index' to add one.")
		return nil
	}

	for _, s := range sites {
		status := "pending"
		if s.Indexed() {
			n, err := deps.Chunks.CountChunks(deps.Ctx, s.ID)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", sitechat.ErrorMessage(err))
				return err
			}
			status = fmt.Sprintf("%d chunks", n)
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", s.ID, s.URL, s.EmbedModel, status)
	}
	return nil
}
