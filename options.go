package peopleclient

// Functional options that configure the Client during construction.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
//
// Options run before any wrapper is installed, so their order does not
// matter and the transport of a WithHTTPClient client ends up innermost.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout. The value must be
// greater than zero. Per-call context deadlines are the finer-grained knob.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("%w: http timeout must be > 0", ErrInvalidArgument)
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the http.Client. Its Transport is kept and wrapped;
// the client passed in is not modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("%w: http client cannot be nil", ErrInvalidArgument)
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithDebugLogging dumps each request and response at debug level when
// enabled is true. Dumps include request bodies; keep it out of production.
// false does not override PEOPLE_DEBUG.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.debug = true
		}
		return nil
	}
}

// WithLogger sets the logger used for bulk-operation summaries. The global
// zerolog logger is used otherwise.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}
