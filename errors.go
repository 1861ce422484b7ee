package peopleclient

import (
	clienterrors "github.com/pawel123789/peopleclient/internal/errors"
	"github.com/pawel123789/peopleclient/internal/types"
)

// ClientError is returned for every non-success response from the service.
// Message holds the server's own reason when the body carries one.
type ClientError = clienterrors.ClientError

// Re-export shared errors so callers compare against a single symbol.
var (
	// ErrInvalidArgument marks caller mistakes caught before any request:
	// a non-positive page size, a query key outside the five record fields,
	// an empty id or base URL.
	ErrInvalidArgument = types.ErrInvalidArgument

	// ErrImportFailed wraps the error that stopped a bulk import.
	ErrImportFailed = types.ErrImportFailed

	// ErrMissingTotalCount is returned by ListPaged when the service does not
	// report X-Total-Count.
	ErrMissingTotalCount = types.ErrMissingTotalCount
)

// IsStatus reports whether err carries a ClientError with the given HTTP status.
func IsStatus(err error, code int) bool { return clienterrors.IsStatus(err, code) }

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool { return clienterrors.IsNotFound(err) }
