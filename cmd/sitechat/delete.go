package main

import (
	"fmt"

	"github.com/fwojciec/sitechat"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return sitechat.Errorf(sitechat.EINVALID, "use --force to confirm deletion")
	}

	id, err := sitechat.SiteID(c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitechat.ErrorMessage(err))
		return err
	}

	if err := deps.Sites.DeleteSite(deps.Ctx, id); err != nil {
		if sitechat.ErrorCode(err) == sitechat.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: site %q not found. Use 'sitechat list' to see indexed sites.\n", c.URL)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitechat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted site %q\n", id)
	return nil
}
