package checkout

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/types"
)

// ItemInput is one cart line as submitted by the client.
type ItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// SubmitOrderRequest is the checkout payload. The client reports the totals
// it displayed; the server recomputes them and rejects the order when the
// two disagree.
type SubmitOrderRequest struct {
	Items           []ItemInput           `json:"items" validate:"required,min=1,dive"`
	CustomerName    string                `json:"customer_name" validate:"required"`
	Phone           string                `json:"phone" validate:"required"`
	ShippingAddress types.ShippingAddress `json:"shipping_address" validate:"required"`
	ShippingZone    string                `json:"shipping_zone,omitempty"`
	Note            *string               `json:"note,omitempty"`
	PaymentMethod   string                `json:"payment_method" validate:"required"`
	Subtotal        decimal.Decimal       `json:"subtotal"`
	ShippingCost    decimal.Decimal       `json:"shipping_cost"`
	Tax             decimal.Decimal       `json:"tax"`
	Total           decimal.Decimal       `json:"total"`
}

// QuoteRequest asks for a price breakdown without submitting.
type QuoteRequest struct {
	Items        []ItemInput `json:"items" validate:"required,min=1,dive"`
	ShippingZone string      `json:"shipping_zone,omitempty"`
	City         string      `json:"city,omitempty"`
}

// QuoteResponse is the server-priced breakdown for a draft cart.
type QuoteResponse struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
}

// totalMismatch names one disagreeing amount in the rejection details.
type totalMismatch struct {
	Field    string `json:"field"`
	Expected string `json:"expected"`
	Got      string `json:"got"`
}
