package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aliamzad3333/ecommerce-web-sub000/internal/orders"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/db/models"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/enums"
	pkgerrors "github.com/aliamzad3333/ecommerce-web-sub000/pkg/errors"
)

// Service handles pricing quotes and order submission.
type Service interface {
	Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error)
	Submit(ctx context.Context, userID *uuid.UUID, req SubmitOrderRequest) (*orders.OrderDTO, error)
}

type store interface {
	FindActiveProducts(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	SubmitOrder(ctx context.Context, order *models.Order) error
}

type service struct {
	store store
	now   func() time.Time
}

// ServiceParams bundles the dependencies required to build a checkout service.
type ServiceParams struct {
	Store store

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

// NewService constructs a checkout service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("checkout store is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{store: params.Store, now: now}, nil
}

func (s *service) Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	zone := ResolveZone(req.ShippingZone, req.City, "")
	lines, _, err := s.priceCart(ctx, req.Items, zone)
	if err != nil {
		return nil, err
	}
	quote := PriceLines(lines, zone)
	return &QuoteResponse{
		Subtotal:     quote.Subtotal,
		ShippingCost: quote.ShippingCost,
		Tax:          quote.Tax,
		Total:        quote.Total,
	}, nil
}

func (s *service) Submit(ctx context.Context, userID *uuid.UUID, req SubmitOrderRequest) (*orders.OrderDTO, error) {
	if len(req.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	paymentMethod, err := enums.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unsupported payment method")
	}

	customerName := strings.TrimSpace(req.CustomerName)
	phone := strings.TrimSpace(req.Phone)
	if customerName == "" || phone == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name and phone are required")
	}

	address := req.ShippingAddress.Normalize()
	if address.AddressLine1 == "" || address.City == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipping address is incomplete")
	}
	if address.FullName == "" {
		address.FullName = customerName
	}
	if address.Phone == "" {
		address.Phone = phone
	}

	zone := ResolveZone(req.ShippingZone, address.City, address.State)

	lines, items, err := s.priceCart(ctx, req.Items, zone)
	if err != nil {
		return nil, err
	}
	quote := PriceLines(lines, zone)
	for i := range items {
		items[i].LineTotal = quote.LineTotals[i]
	}

	if mismatches := compareTotals(quote, req); len(mismatches) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order totals do not match server pricing").
			WithDetails(mismatches)
	}

	order := &models.Order{
		UserID:          userID,
		CustomerName:    customerName,
		Phone:           phone,
		ShippingAddress: address,
		ShippingZone:    zone,
		Note:            req.Note,
		Status:          enums.OrderStatusPending,
		PaymentMethod:   paymentMethod,
		Subtotal:        quote.Subtotal,
		ShippingCost:    quote.ShippingCost,
		Tax:             quote.Tax,
		Total:           quote.Total,
		Items:           items,
		PlacedAt:        s.now().UTC(),
	}

	if err := s.store.SubmitOrder(ctx, order); err != nil {
		var stockErr ErrInsufficientStock
		if errors.As(err, &stockErr) {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("insufficient stock for %s", stockErr.Name)).
				WithDetails(map[string]string{"product_id": stockErr.ProductID.String()})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "submit order")
	}

	return orders.FromModel(order), nil
}

// priceCart resolves each cart line against the live catalog and builds the
// order item snapshots.
func (s *service) priceCart(ctx context.Context, inputs []ItemInput, zone enums.ShippingZone) ([]PricedLine, []models.OrderItem, error) {
	if len(inputs) == 0 {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	ids := make([]uuid.UUID, 0, len(inputs))
	quantities := make(map[uuid.UUID]int, len(inputs))
	for _, input := range inputs {
		if input.Quantity <= 0 {
			return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
		}
		if _, dup := quantities[input.ProductID]; dup {
			return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "duplicate cart line").
				WithDetails(map[string]string{"product_id": input.ProductID.String()})
		}
		ids = append(ids, input.ProductID)
		quantities[input.ProductID] = input.Quantity
	}

	catalog, err := s.store.FindActiveProducts(ctx, ids)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load products")
	}
	byID := make(map[uuid.UUID]*models.Product, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID] = &catalog[i]
	}

	lines := make([]PricedLine, 0, len(inputs))
	items := make([]models.OrderItem, 0, len(inputs))
	for _, input := range inputs {
		product, ok := byID[input.ProductID]
		if !ok {
			return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "product unavailable").
				WithDetails(map[string]string{"product_id": input.ProductID.String()})
		}
		lines = append(lines, PricedLine{UnitPrice: product.Price, Quantity: input.Quantity})
		productID := product.ID
		items = append(items, models.OrderItem{
			ProductID: &productID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  input.Quantity,
			ImageURL:  product.ImageURL,
		})
	}
	return lines, items, nil
}

// ResolveZone picks the first candidate field that names a known zone.
// Unknown destinations fall back to the outside rate.
func ResolveZone(candidates ...string) enums.ShippingZone {
	for _, candidate := range candidates {
		zone := enums.ShippingZone(strings.ToLower(strings.TrimSpace(candidate)))
		if zone.IsValid() {
			return zone
		}
	}
	return enums.ShippingZoneOutside
}

func compareTotals(quote Quote, req SubmitOrderRequest) []totalMismatch {
	var mismatches []totalMismatch
	check := func(field string, expected, got decimal.Decimal) {
		if !expected.Equal(got) {
			mismatches = append(mismatches, totalMismatch{
				Field:    field,
				Expected: expected.StringFixed(moneyScale),
				Got:      got.StringFixed(moneyScale),
			})
		}
	}
	check("subtotal", quote.Subtotal, req.Subtotal)
	check("shipping_cost", quote.ShippingCost, req.ShippingCost)
	check("tax", quote.Tax, req.Tax)
	check("total", quote.Total, req.Total)
	return mismatches
}
