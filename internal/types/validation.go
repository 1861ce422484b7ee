package types

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidArgument is returned for caller mistakes detected before any request is sent.
var ErrInvalidArgument = errors.New("invalid argument")

// Field names a caller may filter on.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldPhone     = "phone"
	FieldIPAddress = "ip_address"
	FieldEmail     = "email"
)

// QueryFields is the filter whitelist, in record order.
var QueryFields = []string{FieldFirstName, FieldLastName, FieldPhone, FieldIPAddress, FieldEmail}

// ValidateCriteria rejects any key outside QueryFields. Offending keys are
// reported in sorted order so the message is stable.
func ValidateCriteria(c Criteria) error {
	var bad []string
	for k := range c {
		if !isQueryField(k) {
			bad = append(bad, k)
		}
	}
	if len(bad) == 0 {
		return nil
	}
	sort.Strings(bad)
	return fmt.Errorf("%w: unsupported query fields %v (allowed: %v)", ErrInvalidArgument, bad, QueryFields)
}

// ValidateLimit requires a positive page size.
func ValidateLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("%w: limit has to be positive, got %d", ErrInvalidArgument, limit)
	}
	return nil
}

// ValidateIDPresent ensures an identifier is non-empty.
func ValidateIDPresent(id, name string) error {
	if id == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidArgument, name)
	}
	return nil
}

func isQueryField(k string) bool {
	for _, f := range QueryFields {
		if f == k {
			return true
		}
	}
	return false
}

// ErrImportFailed is returned when a bulk import stops at a record the server did not create.
var ErrImportFailed = errors.New("import failed")

// ErrMissingTotalCount is returned when a paginated listing gets no usable X-Total-Count header.
var ErrMissingTotalCount = errors.New("missing X-Total-Count header")
