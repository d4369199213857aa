package types

import "strings"

// Address is the shipping/billing address captured at checkout and on
// profiles. All fields are plain strings; validation happens at the edges.
type Address struct {
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Line1      string `json:"line1"`
	Apartment  string `json:"apartment,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// IsZero reports whether no address field has been set.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Complete reports whether the fields required for shipping are present.
func (a Address) Complete() bool {
	for _, field := range []string{a.Line1, a.City, a.State, a.PostalCode, a.Country} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}
