// Package transport provides DTOs for the skip trace domain.
package transport

// Contact is one input row. All fields are opaque strings.
type Contact struct {
	FirstName  string
	MiddleName string
	LastName   string
	Address    string
	City       string
	State      string
	Zip        string
}

// NormalizedAddress holds the state code and ZIP derived from a Contact.
type NormalizedAddress struct {
	StateCode string
	Zip5      string
}

// LookupRequest is the body sent to SkipEngine.
// Middle name is never transmitted.
type LookupRequest struct {
	FName    string `json:"FName"`
	LName    string `json:"LName"`
	Address1 string `json:"Address1"`
	City     string `json:"City"`
	State    string `json:"State"`
	Zip      string `json:"Zip"`
}

// ContactResult is what a lookup contributes to a row.
// Empty string is the only representation of missing data.
type ContactResult struct {
	MobilePhone string `json:"mobile_phone"`
	Landline    string `json:"landline"`
	Email       string `json:"email"`
}

// IsEmpty reports whether no field was populated.
func (r ContactResult) IsEmpty() bool {
	return r == ContactResult{}
}
