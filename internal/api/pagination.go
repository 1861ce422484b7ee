package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pawel123789/peopleclient/internal/types"
)

const (
	limitParam       = "_limit"
	pageParam        = "_page"
	totalCountHeader = "X-Total-Count"
)

// PageCount is the number of pages of size limit needed to hold total records.
// limit must be positive.
func PageCount(total, limit int) int {
	if total <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}

// ListPeoplePaged walks the collection limit records at a time. The first
// request learns the total from X-Total-Count; pages 2..n follow in order.
func ListPeoplePaged(ctx context.Context, httpClient HTTPClient, baseURL string, limit int) ([]types.Person, error) {
	if err := types.ValidateLimit(limit); err != nil {
		return nil, err
	}

	var people []types.Person
	hdr, err := call(ctx, httpClient, "list people", http.MethodGet, pageURL(baseURL, limit, 0), nil, isSuccess, &people)
	if err != nil {
		return nil, err
	}
	total, err := totalCount(hdr)
	if err != nil {
		return nil, err
	}

	pages := PageCount(total, limit)
	for page := 2; page <= pages; page++ {
		var chunk []types.Person
		if _, err := call(ctx, httpClient, fmt.Sprintf("list people page %d", page), http.MethodGet, pageURL(baseURL, limit, page), nil, isSuccess, &chunk); err != nil {
			return nil, err
		}
		people = append(people, chunk...)
	}
	return people, nil
}

// pageURL omits _page for the first request, matching what json-server
// treats as page one.
func pageURL(baseURL string, limit, page int) string {
	q := url.Values{}
	q.Set(limitParam, strconv.Itoa(limit))
	if page > 0 {
		q.Set(pageParam, strconv.Itoa(page))
	}
	return collectionURL(baseURL, q)
}

func totalCount(h http.Header) (int, error) {
	raw := strings.TrimSpace(h.Get(totalCountHeader))
	if raw == "" {
		return 0, types.ErrMissingTotalCount
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", types.ErrMissingTotalCount, raw)
	}
	return n, nil
}
