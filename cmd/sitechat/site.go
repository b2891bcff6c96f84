package main

import (
	"fmt"

	"github.com/fwojciec/sitechat"
)

// findIndexedSite returns the indexed site for rawURL, printing a hint when
// there is none.
func findIndexedSite(deps *Dependencies, rawURL string) (*sitechat.Site, error) {
	id, err := sitechat.SiteID(rawURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitechat.ErrorMessage(err))
		return nil, err
	}

	site, err := deps.Sites.FindSiteByID(deps.Ctx, id)
	if err == nil && !site.Indexed() {
		err = sitechat.Errorf(sitechat.ENOTFOUND, "site %q has not finished indexing", id)
	}
	if sitechat.ErrorCode(err) == sitechat.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: %s is not indexed. Run 'sitechat index %s' first.\n", rawURL, rawURL)
		return nil, err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitechat.ErrorMessage(err))
		return nil, err
	}
	return site, nil
}

// answererFor returns the answering pipeline for the indexed site at rawURL.
func answererFor(deps *Dependencies, rawURL string) (sitechat.Answerer, error) {
	site, err := findIndexedSite(deps, rawURL)
	if err != nil {
		return nil, err
	}
	answerer, err := deps.NewAnswerer(site)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitechat.ErrorMessage(err))
		return nil, err
	}
	return answerer, nil
}
