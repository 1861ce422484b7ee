package types

// ------------------------------
// Request Types
// ------------------------------

// NewPerson holds the five required fields of a record to create.
type NewPerson struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IPAddress string `json:"ip_address"`
}

// Criteria maps whitelisted field names to exact-match values.
type Criteria map[string]string
