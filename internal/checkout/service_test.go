package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/db/models"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/enums"
	pkgerrors "github.com/aliamzad3333/ecommerce-web-sub000/pkg/errors"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/types"
)

func TestServiceSubmitHappyPath(t *testing.T) {
	store := newStubStore()
	bear := store.addProduct("Soft Plush Bear", "550.00", 5)
	bottle := store.addProduct("Baby Bottle", "250.00", 10)
	svc := mustService(t, store)

	userID := uuid.New()
	dto, err := svc.Submit(context.Background(), &userID, SubmitOrderRequest{
		Items: []ItemInput{
			{ProductID: bear.ID, Quantity: 1},
			{ProductID: bottle.ID, Quantity: 2},
		},
		CustomerName:  "Test Shopper",
		Phone:         "01712345678",
		PaymentMethod: "cash",
		ShippingAddress: types.ShippingAddress{
			AddressLine1: "House 7, Road 2",
			City:         "Dhaka",
		},
		Subtotal:     decimal.RequireFromString("1050.00"),
		ShippingCost: decimal.RequireFromString("50.00"),
		Tax:          decimal.Zero,
		Total:        decimal.RequireFromString("1100.00"),
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if dto.Status != enums.OrderStatusPending {
		t.Fatalf("new orders start pending, got %s", dto.Status)
	}
	if got := dto.Total.StringFixed(2); got != "1100.00" {
		t.Fatalf("total: got %s, want 1100.00", got)
	}
	if dto.ShippingZone != enums.ShippingZoneDhaka {
		t.Fatalf("expected dhaka zone from city, got %s", dto.ShippingZone)
	}
	if len(dto.Items) != 2 {
		t.Fatalf("expected 2 item snapshots, got %d", len(dto.Items))
	}
	if dto.Items[0].Name != "Soft Plush Bear" {
		t.Fatalf("snapshot should copy the product name, got %q", dto.Items[0].Name)
	}
	if store.products[bear.ID].Stock != 4 {
		t.Fatalf("expected stock decrement, got %d", store.products[bear.ID].Stock)
	}
	if len(store.submitted) != 1 {
		t.Fatalf("expected one persisted order, got %d", len(store.submitted))
	}
}

func TestServiceSubmitGuestOrder(t *testing.T) {
	store := newStubStore()
	bear := store.addProduct("Soft Plush Bear", "100.00", 5)
	svc := mustService(t, store)

	dto, err := svc.Submit(context.Background(), nil, validRequest(bear.ID, "100.00", "100.00", "200.00", "Bogura"))
	if err != nil {
		t.Fatalf("guest submit: %v", err)
	}
	if dto.UserID != nil {
		t.Fatalf("guest orders carry no user id")
	}
	if dto.ShippingZone != enums.ShippingZoneOutside {
		t.Fatalf("unknown city should fall back to outside, got %s", dto.ShippingZone)
	}
}

func TestServiceSubmitRejectsTotalMismatch(t *testing.T) {
	store := newStubStore()
	bear := store.addProduct("Soft Plush Bear", "100.00", 5)
	svc := mustService(t, store)

	req := validRequest(bear.ID, "100.00", "50.00", "175.00", "Dhaka")
	_, err := svc.Submit(context.Background(), nil, req)

	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	mismatches, ok := typed.Details().([]totalMismatch)
	if !ok || len(mismatches) == 0 {
		t.Fatalf("expected mismatch details, got %v", typed.Details())
	}
	if len(store.submitted) != 0 {
		t.Fatalf("mismatched order must not persist")
	}
}

func TestServiceSubmitUnknownProduct(t *testing.T) {
	store := newStubStore()
	svc := mustService(t, store)

	_, err := svc.Submit(context.Background(), nil, validRequest(uuid.New(), "100.00", "50.00", "150.00", "Dhaka"))
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceSubmitInsufficientStock(t *testing.T) {
	store := newStubStore()
	bear := store.addProduct("Soft Plush Bear", "100.00", 1)
	svc := mustService(t, store)

	req := validRequest(bear.ID, "200.00", "50.00", "250.00", "Dhaka")
	req.Items[0].Quantity = 2

	_, err := svc.Submit(context.Background(), nil, req)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
	if len(store.submitted) != 0 {
		t.Fatalf("failed order must not persist")
	}
	if store.products[bear.ID].Stock != 1 {
		t.Fatalf("rollback should restore stock, got %d", store.products[bear.ID].Stock)
	}
}

func TestServiceSubmitRejectsNonCashPayment(t *testing.T) {
	store := newStubStore()
	bear := store.addProduct("Soft Plush Bear", "100.00", 5)
	svc := mustService(t, store)

	req := validRequest(bear.ID, "100.00", "50.00", "150.00", "Dhaka")
	req.PaymentMethod = "card"

	_, err := svc.Submit(context.Background(), nil, req)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceSubmitRejectsDuplicateLines(t *testing.T) {
	store := newStubStore()
	bear := store.addProduct("Soft Plush Bear", "100.00", 5)
	svc := mustService(t, store)

	req := validRequest(bear.ID, "200.00", "50.00", "250.00", "Dhaka")
	req.Items = append(req.Items, ItemInput{ProductID: bear.ID, Quantity: 1})

	_, err := svc.Submit(context.Background(), nil, req)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceQuote(t *testing.T) {
	store := newStubStore()
	bear := store.addProduct("Soft Plush Bear", "550.00", 5)
	svc := mustService(t, store)

	quote, err := svc.Quote(context.Background(), QuoteRequest{
		Items: []ItemInput{{ProductID: bear.ID, Quantity: 2}},
		City:  "Chattogram",
	})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if got := quote.Subtotal.StringFixed(2); got != "1100.00" {
		t.Fatalf("subtotal: got %s, want 1100.00", got)
	}
	if got := quote.ShippingCost.StringFixed(2); got != "50.00" {
		t.Fatalf("shipping: got %s, want 50.00", got)
	}
	if got := quote.Total.StringFixed(2); got != "1150.00" {
		t.Fatalf("total: got %s, want 1150.00", got)
	}
}

func validRequest(productID uuid.UUID, subtotal, shipping, total, city string) SubmitOrderRequest {
	return SubmitOrderRequest{
		Items:         []ItemInput{{ProductID: productID, Quantity: 1}},
		CustomerName:  "Test Shopper",
		Phone:         "01712345678",
		PaymentMethod: "cash",
		ShippingAddress: types.ShippingAddress{
			AddressLine1: "House 7, Road 2",
			City:         city,
		},
		Subtotal:     decimal.RequireFromString(subtotal),
		ShippingCost: decimal.RequireFromString(shipping),
		Tax:          decimal.Zero,
		Total:        decimal.RequireFromString(total),
	}
}

func mustService(t *testing.T, store store) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Store: store,
		Now:   func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

type stubStore struct {
	products  map[uuid.UUID]*models.Product
	submitted []*models.Order
}

func newStubStore() *stubStore {
	return &stubStore{products: map[uuid.UUID]*models.Product{}}
}

func (s *stubStore) addProduct(name, price string, stock int) *models.Product {
	product := &models.Product{
		ID:       uuid.New(),
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
		IsActive: true,
	}
	s.products[product.ID] = product
	return product
}

func (s *stubStore) FindActiveProducts(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	var rows []models.Product
	for _, id := range ids {
		if p, ok := s.products[id]; ok && p.IsActive {
			rows = append(rows, *p)
		}
	}
	return rows, nil
}

func (s *stubStore) SubmitOrder(ctx context.Context, order *models.Order) error {
	// Mirrors the transactional repository: validate all decrements first so
	// a failure leaves stock untouched.
	for _, item := range order.Items {
		if item.ProductID == nil {
			continue
		}
		p, ok := s.products[*item.ProductID]
		if !ok || p.Stock < item.Quantity {
			return ErrInsufficientStock{ProductID: *item.ProductID, Name: item.Name}
		}
	}
	for _, item := range order.Items {
		if item.ProductID != nil {
			s.products[*item.ProductID].Stock -= item.Quantity
		}
	}
	order.ID = uuid.New()
	order.OrderNumber = int64(10000 + len(s.submitted) + 1)
	s.submitted = append(s.submitted, order)
	return nil
}
