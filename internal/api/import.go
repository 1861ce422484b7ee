package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	pkgerrors "github.com/pkg/errors"

	"github.com/pawel123789/peopleclient/internal/types"
)

// ImportPeople reads a JSON array of records from r and posts them one by one
// in file order. Records are forwarded as written. The first response other
// than 201 Created aborts the import; records after it are never sent.
func ImportPeople(ctx context.Context, httpClient HTTPClient, baseURL string, r io.Reader) (int, error) {
	var records []json.RawMessage
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return 0, pkgerrors.WithStack(fmt.Errorf("%w: decode records: %v", types.ErrImportFailed, err))
	}

	created := func(code int) bool { return code == http.StatusCreated }
	for i, rec := range records {
		if _, err := call(ctx, httpClient, "import person", http.MethodPost, baseURL, rec, created, nil); err != nil {
			return i, pkgerrors.WithStack(fmt.Errorf("%w: record %d of %d: %w", types.ErrImportFailed, i+1, len(records), err))
		}
	}
	return len(records), nil
}

// ImportPeopleFile is ImportPeople over the contents of path.
func ImportPeopleFile(ctx context.Context, httpClient HTTPClient, baseURL, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, pkgerrors.WithStack(err)
	}
	defer func() { _ = f.Close() }()
	return ImportPeople(ctx, httpClient, baseURL, f)
}
