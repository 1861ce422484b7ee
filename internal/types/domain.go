package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// PersonID is the server-assigned identifier of a record. json-server hands out
// integers while other backends use strings, so both decode into a PersonID.
type PersonID string

// UnmarshalJSON accepts a JSON number or a JSON string.
func (id *PersonID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = PersonID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("person id: %w", err)
	}
	*id = PersonID(n.String())
	return nil
}

// MarshalJSON writes ids that are valid JSON numbers as numbers so they
// round-trip with json-server. Anything else, including "007", is a string.
func (id PersonID) MarshalJSON() ([]byte, error) {
	if id.numeric() {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id PersonID) String() string { return string(id) }

// numeric reports whether id is a JSON number literal with nothing around it.
// JSON forbids leading zeros, so zero-padded ids stay strings.
func (id PersonID) numeric() bool {
	if id == "" {
		return false
	}
	first, last := id[0], id[len(id)-1]
	if (first != '-' && !isDigit(first)) || !isDigit(last) {
		return false
	}
	return json.Valid([]byte(id))
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Person is one directory record.
type Person struct {
	ID        PersonID `json:"id,omitempty"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Phone     string   `json:"phone"`
	IPAddress string   `json:"ip_address"`
	Email     string   `json:"email"`
}
