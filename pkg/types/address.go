package types

import "strings"

// ShippingAddress is the delivery destination captured at order submission.
// Stored as jsonb on the order row; the snapshot survives later account edits.
type ShippingAddress struct {
	FullName     string `json:"full_name"`
	AddressLine1 string `json:"address_line1"`
	City         string `json:"city"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
}

// Normalize trims whitespace and defaults the country.
func (a ShippingAddress) Normalize() ShippingAddress {
	out := ShippingAddress{
		FullName:     strings.TrimSpace(a.FullName),
		AddressLine1: strings.TrimSpace(a.AddressLine1),
		City:         strings.TrimSpace(a.City),
		State:        strings.TrimSpace(a.State),
		PostalCode:   strings.TrimSpace(a.PostalCode),
		Country:      strings.TrimSpace(a.Country),
		Phone:        strings.TrimSpace(a.Phone),
	}
	if out.Country == "" {
		out.Country = "BD"
	}
	return out
}
