package catalog

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rootsapp/roots-server/internal/normalize"
)

// Search queries the catalog for volumes matching the query. Results
// without a cover image are dropped, and duplicate editions of the same
// title/author pair are collapsed to the first occurrence.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	return c.searchWithBase(ctx, c.baseURL, query)
}

// searchWithBase is the testable core of Search.
func (c *Client) searchWithBase(ctx context.Context, baseURL, query string) ([]Result, error) {
	if err := c.wait(ctx); err != nil {
		return nil, wrapError("search", query, fmt.Errorf("rate limit: %w", err))
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("printType", "books")
	params.Set("orderBy", "relevance")
	params.Set("maxResults", strconv.Itoa(c.pageSize))
	if c.language != "" {
		params.Set("langRestrict", c.language)
	}

	searchURL := baseURL + "?" + params.Encode()

	c.logger.Debug("searching catalog",
		"query", query,
		"page_size", c.pageSize,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, wrapError("search", query, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, wrapError("search", query, fmt.Errorf("execute request: %w", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to parsing
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, wrapError("search", query, ErrRateLimited)
	case resp.StatusCode >= 500:
		return nil, wrapError("search", query, fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode))
	case resp.StatusCode >= 400:
		return nil, wrapError("search", query, fmt.Errorf("%w: status %d", ErrBadRequest, resp.StatusCode))
	default:
		return nil, wrapError("search", query, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var volumes volumesResponse
	if err := json.UnmarshalRead(resp.Body, &volumes); err != nil {
		return nil, wrapError("search", query, fmt.Errorf("parse response: %w", err))
	}

	c.logger.Debug("catalog search results",
		"query", query,
		"count", len(volumes.Items),
	)

	seenID := make(map[string]bool, len(volumes.Items))
	seenEdition := make(map[string]bool, len(volumes.Items))

	results := make([]Result, 0, len(volumes.Items))
	for i := range volumes.Items {
		v := &volumes.Items[i]
		info := &v.VolumeInfo

		// Cover-less results render as blanks; skip them.
		cover := coverURL(info.ImageLinks)
		if cover == "" {
			continue
		}
		if info.Title == "" {
			continue
		}

		// The API sometimes repeats a volume across result pages.
		if seenID[v.ID] {
			continue
		}
		seenID[v.ID] = true

		// Collapse reprints: same title and authors, different volume ID.
		authors := strings.Join(info.Authors, ", ")
		edition := normalize.TitleAuthorKey(info.Title, authors)
		if seenEdition[edition] {
			continue
		}
		seenEdition[edition] = true

		results = append(results, Result{
			ID:          v.ID,
			Title:       info.Title,
			Authors:     authors,
			CoverURL:    cover,
			PageCount:   info.PageCount,
			Description: info.Description,
		})
	}

	return results, nil
}

// coverURL picks the best thumbnail and upgrades it to https. The books
// API still hands out http:// image links.
func coverURL(links imageLinks) string {
	u := links.Thumbnail
	if u == "" {
		u = links.SmallThumbnail
	}
	if strings.HasPrefix(u, "http://") {
		u = "https://" + strings.TrimPrefix(u, "http://")
	}
	return u
}
