package enums

import "strings"

// ShippingZone is the delivery-zone category selected at checkout. Dhaka and
// Chattogram share the metro rate; everywhere else pays the outside rate.
type ShippingZone string

const (
	ShippingZoneDhaka      ShippingZone = "dhaka"
	ShippingZoneChattogram ShippingZone = "chattogram"
	ShippingZoneOutside    ShippingZone = "outside"
)

var validShippingZones = []ShippingZone{
	ShippingZoneDhaka,
	ShippingZoneChattogram,
	ShippingZoneOutside,
}

// String implements fmt.Stringer.
func (z ShippingZone) String() string {
	return string(z)
}

// IsValid reports whether the value is a known ShippingZone.
func (z ShippingZone) IsValid() bool {
	for _, candidate := range validShippingZones {
		if candidate == z {
			return true
		}
	}
	return false
}

// NormalizeShippingZone maps raw input onto a known zone. Unknown labels
// collapse to outside, which carries the higher surcharge.
func NormalizeShippingZone(value string) ShippingZone {
	zone := ShippingZone(strings.ToLower(strings.TrimSpace(value)))
	if zone.IsValid() {
		return zone
	}
	return ShippingZoneOutside
}
