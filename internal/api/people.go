package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pawel123789/peopleclient/internal/types"
)

// ListPeople fetches the whole collection in a single request.
func ListPeople(ctx context.Context, httpClient HTTPClient, baseURL string) ([]types.Person, error) {
	var people []types.Person
	if _, err := call(ctx, httpClient, "list people", http.MethodGet, baseURL, nil, isSuccess, &people); err != nil {
		return nil, err
	}
	return people, nil
}

// AddPerson posts a new record and returns the created record as the server echoes it.
func AddPerson(ctx context.Context, httpClient HTTPClient, baseURL string, req types.NewPerson) (*types.Person, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	var created types.Person
	if _, err := call(ctx, httpClient, "add person", http.MethodPost, baseURL, body, isSuccess, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetPerson fetches a single record by id.
func GetPerson(ctx context.Context, httpClient HTTPClient, baseURL, personID string) (*types.Person, error) {
	if err := types.ValidateIDPresent(personID, "personId"); err != nil {
		return nil, err
	}
	var p types.Person
	if _, err := call(ctx, httpClient, "get person", http.MethodGet, itemURL(baseURL, personID), nil, isSuccess, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// QueryPeople filters the collection by exact match on whitelisted fields.
// The server does the filtering; the result is returned as decoded.
func QueryPeople(ctx context.Context, httpClient HTTPClient, baseURL string, criteria types.Criteria) ([]types.Person, error) {
	var people []types.Person
	if err := query(ctx, httpClient, baseURL, criteria, &people); err != nil {
		return nil, err
	}
	return people, nil
}

// QueryPeopleRaw is QueryPeople without mapping onto Person, so fields the
// server adds beyond the five record fields are kept.
func QueryPeopleRaw(ctx context.Context, httpClient HTTPClient, baseURL string, criteria types.Criteria) ([]map[string]any, error) {
	var records []map[string]any
	if err := query(ctx, httpClient, baseURL, criteria, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func query(ctx context.Context, httpClient HTTPClient, baseURL string, criteria types.Criteria, out any) error {
	if err := types.ValidateCriteria(criteria); err != nil {
		return err
	}
	q := url.Values{}
	for k, v := range criteria {
		q.Set(k, v)
	}
	_, err := call(ctx, httpClient, "query people", http.MethodGet, collectionURL(baseURL, q), nil, isSuccess, out)
	return err
}

// PartialIPPattern anchors partialIP at the start of the address.
func PartialIPPattern(partialIP string) string { return "^" + partialIP }

// PeopleByPartialIP asks the server for records whose ip_address matches
// PartialIPPattern(partialIP).
func PeopleByPartialIP(ctx context.Context, httpClient HTTPClient, baseURL, partialIP string) ([]types.Person, error) {
	q := url.Values{}
	q.Set(types.FieldIPAddress+"_like", PartialIPPattern(partialIP))
	var people []types.Person
	if _, err := call(ctx, httpClient, "people by partial ip", http.MethodGet, collectionURL(baseURL, q), nil, isSuccess, &people); err != nil {
		return nil, err
	}
	return people, nil
}

// DeletePerson removes a record by id.
func DeletePerson(ctx context.Context, httpClient HTTPClient, baseURL, personID string) error {
	if err := types.ValidateIDPresent(personID, "personId"); err != nil {
		return err
	}
	_, err := call(ctx, httpClient, "delete person", http.MethodDelete, itemURL(baseURL, personID), nil, isSuccess, nil)
	return err
}

// DeleteByFirstName looks up every record with the given first name and
// deletes them one at a time. It is not atomic: on failure it stops and
// reports how many were deleted before the error.
func DeleteByFirstName(ctx context.Context, httpClient HTTPClient, baseURL, firstName string) (int, error) {
	people, err := QueryPeople(ctx, httpClient, baseURL, types.Criteria{types.FieldFirstName: firstName})
	if err != nil {
		return 0, err
	}
	deleted := 0
	for _, p := range people {
		if p.ID == "" {
			return deleted, fmt.Errorf("delete by first name: record without id in lookup result")
		}
		if err := DeletePerson(ctx, httpClient, baseURL, p.ID.String()); err != nil {
			return deleted, fmt.Errorf("delete by first name: deleted %d of %d: %w", deleted, len(people), err)
		}
		deleted++
	}
	return deleted, nil
}
