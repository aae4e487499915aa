package checkout

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/enums"
)

func TestShippingCostForZone(t *testing.T) {
	cases := map[enums.ShippingZone]string{
		enums.ShippingZoneDhaka:      "50.00",
		enums.ShippingZoneChattogram: "50.00",
		enums.ShippingZoneOutside:    "100.00",
	}
	for zone, want := range cases {
		if got := ShippingCostForZone(zone).StringFixed(2); got != want {
			t.Errorf("zone %s: got %s, want %s", zone, got, want)
		}
	}
}

func TestPriceLinesBreakdown(t *testing.T) {
	lines := []PricedLine{
		{UnitPrice: decimal.RequireFromString("250.00"), Quantity: 2},
		{UnitPrice: decimal.RequireFromString("500.00"), Quantity: 1},
	}

	quote := PriceLines(lines, enums.ShippingZoneDhaka)

	if got := quote.Subtotal.StringFixed(2); got != "1000.00" {
		t.Errorf("subtotal: got %s, want 1000.00", got)
	}
	if got := quote.ShippingCost.StringFixed(2); got != "50.00" {
		t.Errorf("shipping: got %s, want 50.00", got)
	}
	if got := quote.Tax.StringFixed(2); got != "0.00" {
		t.Errorf("tax: got %s, want 0.00", got)
	}
	if got := quote.Total.StringFixed(2); got != "1050.00" {
		t.Errorf("total: got %s, want 1050.00", got)
	}
}

func TestPriceLinesOutsideZone(t *testing.T) {
	lines := []PricedLine{
		{UnitPrice: decimal.RequireFromString("1000.00"), Quantity: 1},
	}

	quote := PriceLines(lines, enums.ShippingZoneOutside)

	if got := quote.Total.StringFixed(2); got != "1100.00" {
		t.Errorf("total: got %s, want 1100.00", got)
	}
}

func TestPriceLinesRoundsToTwoDecimals(t *testing.T) {
	lines := []PricedLine{
		{UnitPrice: decimal.RequireFromString("33.335"), Quantity: 3},
	}

	quote := PriceLines(lines, enums.ShippingZoneDhaka)

	if got := quote.LineTotals[0].StringFixed(2); got != "100.01" {
		t.Errorf("line total: got %s, want 100.01", got)
	}
	if got := quote.Subtotal.StringFixed(2); got != "100.01" {
		t.Errorf("subtotal: got %s, want 100.01", got)
	}
	if got := quote.Total.StringFixed(2); got != "150.01" {
		t.Errorf("total: got %s, want 150.01", got)
	}
}

func TestPriceLinesEmptyCart(t *testing.T) {
	quote := PriceLines(nil, enums.ShippingZoneDhaka)

	if got := quote.Subtotal.StringFixed(2); got != "0.00" {
		t.Errorf("subtotal: got %s, want 0.00", got)
	}
	if got := quote.Total.StringFixed(2); got != "50.00" {
		t.Errorf("total: got %s, want 50.00", got)
	}
}

func TestResolveZoneFieldFallback(t *testing.T) {
	cases := []struct {
		name       string
		candidates []string
		want       enums.ShippingZone
	}{
		{"explicit zone wins", []string{"dhaka", "chattogram"}, enums.ShippingZoneDhaka},
		{"city fallback", []string{"", "Chattogram"}, enums.ShippingZoneChattogram},
		{"case and space insensitive", []string{" DHAKA "}, enums.ShippingZoneDhaka},
		{"unknown city", []string{"", "Sylhet"}, enums.ShippingZoneOutside},
		{"state fallback", []string{"", "Mirpur", "dhaka"}, enums.ShippingZoneDhaka},
		{"nothing recognized", []string{"", "", ""}, enums.ShippingZoneOutside},
	}
	for _, tc := range cases {
		if got := ResolveZone(tc.candidates...); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}
