package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	clienterrors "github.com/pawel123789/peopleclient/internal/errors"
)

// HTTPClient is the subset of *http.Client the API functions need.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// collectionURL appends q to the base collection URL.
func collectionURL(baseURL string, q url.Values) string {
	if len(q) == 0 {
		return baseURL
	}
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	return baseURL + sep + q.Encode()
}

// itemURL addresses a single record under the collection.
func itemURL(baseURL, id string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + url.PathEscape(id)
}

func isSuccess(code int) bool { return code >= 200 && code < 300 }

// call sends one request and decodes a successful JSON body into out (when
// non-nil). accept decides which status codes count as success. The response
// headers are returned so callers can read pagination metadata.
func call(ctx context.Context, httpClient HTTPClient, op, method, u string, body []byte, accept func(int) bool, out any) (http.Header, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	// Note: Authorization header will be added by transport layer

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !accept(resp.StatusCode) {
		return resp.Header, clienterrors.FromResponse(op, resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.Header, fmt.Errorf("%s: decode response: %w", op, err)
		}
	}
	return resp.Header, nil
}
