package peopleclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pawel123789/peopleclient/internal/api"
	"github.com/pawel123789/peopleclient/internal/types"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to one people collection. It holds no mutable state after New
// returns and may be shared between goroutines.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     zerolog.Logger
	debug   bool
}

// New constructs a Client for the collection at baseURL (for example
// "http://localhost:3000/people/"). token is sent as a bearer token on write
// requests; it may be empty for read-only use.
func New(baseURL, token string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: baseURL cannot be empty", ErrInvalidArgument)
	}

	c := &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	c.debug = debugLoggingRequested()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.wrapTransport()
	return c, nil
}

// BaseURL returns the collection URL the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// wrapTransport installs, outermost first: auth, request id, metrics, debug
// logging when enabled, then the transport of the configured http.Client.
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	if c.debug {
		base = &debugTransport{base: base}
	}
	c.http.Transport = &authTransport{
		base:  &requestIDTransport{base: &metricsTransport{base: base}},
		token: c.token,
	}
}

// --------------------------------------------------------------------
// Listing
// --------------------------------------------------------------------

// ListAll fetches the whole collection in one request.
func (c *Client) ListAll(ctx context.Context) ([]Person, error) {
	return api.ListPeople(ctx, c.http, c.baseURL)
}

// ListPaged fetches the collection limit records at a time and returns every
// page concatenated in order. limit must be positive.
func (c *Client) ListPaged(ctx context.Context, limit int) ([]Person, error) {
	people, err := api.ListPeoplePaged(ctx, c.http, c.baseURL, limit)
	if err != nil {
		return nil, err
	}
	c.log.Debug().Int("limit", limit).Int("count", len(people)).Msg("paged listing completed")
	return people, nil
}

// --------------------------------------------------------------------
// Single records
// --------------------------------------------------------------------

// AddPerson creates a record and returns it as stored by the server.
func (c *Client) AddPerson(ctx context.Context, req NewPerson) (*Person, error) {
	return api.AddPerson(ctx, c.http, c.baseURL, req)
}

// GetPerson fetches a record by id.
func (c *Client) GetPerson(ctx context.Context, id string) (*Person, error) {
	return api.GetPerson(ctx, c.http, c.baseURL, id)
}

// DeletePerson removes a record by id.
func (c *Client) DeletePerson(ctx context.Context, id string) error {
	if err := api.DeletePerson(ctx, c.http, c.baseURL, id); err != nil {
		return err
	}
	recordsDeletedTotal.Inc()
	return nil
}

// --------------------------------------------------------------------
// Filtering
// --------------------------------------------------------------------

// Query returns records matching every criterion exactly. Only the five record
// fields are accepted as keys; anything else fails with ErrInvalidArgument.
// Fields the server returns beyond Person's are dropped; see QueryRaw.
func (c *Client) Query(ctx context.Context, criteria Criteria) ([]Person, error) {
	return api.QueryPeople(ctx, c.http, c.baseURL, criteria)
}

// QueryRaw is Query returning each record exactly as the server decoded it,
// including fields outside Person.
func (c *Client) QueryRaw(ctx context.Context, criteria Criteria) ([]map[string]any, error) {
	return api.QueryPeopleRaw(ctx, c.http, c.baseURL, criteria)
}

// PeopleByPartialIP returns records whose ip_address starts with partialIP.
// Matching happens on the server.
func (c *Client) PeopleByPartialIP(ctx context.Context, partialIP string) ([]Person, error) {
	return api.PeopleByPartialIP(ctx, c.http, c.baseURL, partialIP)
}

// --------------------------------------------------------------------
// Bulk operations
// --------------------------------------------------------------------

// DeleteByFirstName deletes every record with the given first name, one
// request per record. It is not atomic; the count of deleted records is
// returned even when a later delete fails.
func (c *Client) DeleteByFirstName(ctx context.Context, firstName string) (int, error) {
	n, err := api.DeleteByFirstName(ctx, c.http, c.baseURL, firstName)
	recordsDeletedTotal.Add(float64(n))
	if err != nil {
		c.log.Error().Err(err).Str("first_name", firstName).Int("deleted", n).Msg("delete by first name stopped")
		return n, err
	}
	c.log.Debug().Str("first_name", firstName).Int("deleted", n).Msg("delete by first name completed")
	return n, nil
}

// Import posts every record of the JSON array read from r, in order, and
// stops at the first one the server does not answer with 201 Created. The
// returned count is the number of records created before the stop.
func (c *Client) Import(ctx context.Context, r io.Reader) (int, error) {
	n, err := api.ImportPeople(ctx, c.http, c.baseURL, r)
	return c.afterImport("", n, err)
}

// ImportFile is Import over the file at path.
func (c *Client) ImportFile(ctx context.Context, path string) (int, error) {
	n, err := api.ImportPeopleFile(ctx, c.http, c.baseURL, path)
	return c.afterImport(path, n, err)
}

func (c *Client) afterImport(path string, n int, err error) (int, error) {
	recordsImportedTotal.Add(float64(n))
	if err != nil {
		c.log.Error().Stack().Err(err).Str("path", path).Int("imported", n).Msg("import aborted")
		return n, err
	}
	c.log.Debug().Str("path", path).Int("imported", n).Msg("import completed")
	return n, nil
}

// Public type aliases so callers can import only this package.
type (
	Person    = types.Person
	PersonID  = types.PersonID
	NewPerson = types.NewPerson
	Criteria  = types.Criteria
)
