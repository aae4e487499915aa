package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/enums"
)

// Delivery charges per zone. Dhaka and Chattogram share the metro rate;
// every other destination pays the outside rate.
var (
	metroShippingCost   = decimal.NewFromInt(50)
	outsideShippingCost = decimal.NewFromInt(100)
)

// taxAmount is the flat tax applied to every order. The store is not
// VAT-registered, so orders carry an explicit zero rather than omitting
// the field.
var taxAmount = decimal.Zero

const moneyScale = 2

// PricedLine is one cart line with its resolved unit price.
type PricedLine struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Quote is the server-side price breakdown for a draft order.
type Quote struct {
	Subtotal     decimal.Decimal
	ShippingCost decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
	LineTotals   []decimal.Decimal
}

// ShippingCostForZone returns the delivery charge for the resolved zone.
func ShippingCostForZone(zone enums.ShippingZone) decimal.Decimal {
	switch zone {
	case enums.ShippingZoneDhaka, enums.ShippingZoneChattogram:
		return roundMoney(metroShippingCost)
	default:
		return roundMoney(outsideShippingCost)
	}
}

// PriceLines computes the full breakdown for the given lines and zone.
// Every amount is rounded half-up to two decimal places.
func PriceLines(lines []PricedLine, zone enums.ShippingZone) Quote {
	subtotal := decimal.Zero
	lineTotals := make([]decimal.Decimal, 0, len(lines))
	for _, line := range lines {
		lineTotal := roundMoney(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
		lineTotals = append(lineTotals, lineTotal)
		subtotal = subtotal.Add(lineTotal)
	}
	subtotal = roundMoney(subtotal)

	shipping := ShippingCostForZone(zone)
	tax := roundMoney(taxAmount)
	total := roundMoney(subtotal.Add(shipping).Add(tax))

	return Quote{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Tax:          tax,
		Total:        total,
		LineTotals:   lineTotals,
	}
}

func roundMoney(value decimal.Decimal) decimal.Decimal {
	return value.Round(moneyScale)
}
