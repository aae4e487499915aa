package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/db/models"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/enums"
	pkgerrors "github.com/aliamzad3333/ecommerce-web-sub000/pkg/errors"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/pagination"
)

func TestServiceListForUserScopesToOwner(t *testing.T) {
	repo := newStubRepo()
	owner := uuid.New()
	mine := storedOrder(repo, enums.OrderStatusPending)
	mine.UserID = &owner
	storedOrder(repo, enums.OrderStatusPending)
	svc := mustService(t, repo)

	result, err := svc.ListForUser(context.Background(), owner, pagination.Params{})
	if err != nil {
		t.Fatalf("list for user: %v", err)
	}
	if len(result.Orders) != 1 || result.Orders[0].ID != mine.ID {
		t.Fatalf("expected only the owner's order, got %d rows", len(result.Orders))
	}
}

func TestServiceUpdateStatusHappyPath(t *testing.T) {
	repo := newStubRepo()
	order := storedOrder(repo, enums.OrderStatusPending)
	svc := mustService(t, repo)

	dto, err := svc.UpdateStatus(context.Background(), order.ID, enums.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if dto.Status != enums.OrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", dto.Status)
	}
}

func TestServiceUpdateStatusRejectsIllegalTransition(t *testing.T) {
	cases := []struct {
		from enums.OrderStatus
		to   enums.OrderStatus
	}{
		{enums.OrderStatusPending, enums.OrderStatusShipped},
		{enums.OrderStatusPending, enums.OrderStatusDelivered},
		{enums.OrderStatusShipped, enums.OrderStatusCancelled},
		{enums.OrderStatusDelivered, enums.OrderStatusPending},
		{enums.OrderStatusCancelled, enums.OrderStatusConfirmed},
		{enums.OrderStatusRefunded, enums.OrderStatusPending},
	}

	for _, tc := range cases {
		repo := newStubRepo()
		order := storedOrder(repo, tc.from)
		svc := mustService(t, repo)

		_, err := svc.UpdateStatus(context.Background(), order.ID, tc.to)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
			t.Errorf("%s -> %s: expected state conflict, got %v", tc.from, tc.to, err)
		}
	}
}

func TestServiceUpdateStatusUnknownValue(t *testing.T) {
	repo := newStubRepo()
	order := storedOrder(repo, enums.OrderStatusPending)
	svc := mustService(t, repo)

	_, err := svc.UpdateStatus(context.Background(), order.ID, enums.OrderStatus("archived"))
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceGetForUserHidesForeignOrders(t *testing.T) {
	repo := newStubRepo()
	owner := uuid.New()
	order := storedOrder(repo, enums.OrderStatusPending)
	order.UserID = &owner
	svc := mustService(t, repo)

	if _, err := svc.GetForUser(context.Background(), owner, order.ID); err != nil {
		t.Fatalf("owner read: %v", err)
	}

	_, err := svc.GetForUser(context.Background(), uuid.New(), order.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for foreign user, got %v", err)
	}
}

func TestServiceTrackByNumberMatchesPhoneLoosely(t *testing.T) {
	repo := newStubRepo()
	order := storedOrder(repo, enums.OrderStatusPending)
	order.OrderNumber = 10042
	order.Phone = "+880 1712-345678"
	svc := mustService(t, repo)

	if _, err := svc.TrackByNumber(context.Background(), 10042, "01712345678"); err != nil {
		t.Fatalf("track with local format: %v", err)
	}

	_, err := svc.TrackByNumber(context.Background(), 10042, "01700000000")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for wrong phone, got %v", err)
	}
}

func mustService(t *testing.T, repo repository) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func storedOrder(repo *stubRepo, status enums.OrderStatus) *models.Order {
	order := &models.Order{
		ID:          uuid.New(),
		OrderNumber: 10001,
		Phone:       "01712345678",
		Status:      status,
	}
	repo.orders[order.ID] = order
	return order
}

type stubRepo struct {
	orders map[uuid.UUID]*models.Order
}

func newStubRepo() *stubRepo {
	return &stubRepo{orders: map[uuid.UUID]*models.Order{}}
}

func (s *stubRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if o, ok := s.orders[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) FindByNumber(ctx context.Context, orderNumber int64) (*models.Order, error) {
	for _, o := range s.orders {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error {
	if o, ok := s.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (s *stubRepo) List(ctx context.Context, input ListInput) (*ListResult, error) {
	dtos := make([]OrderDTO, 0, len(s.orders))
	for _, o := range s.orders {
		if input.Filters.UserID != nil && (o.UserID == nil || *o.UserID != *input.Filters.UserID) {
			continue
		}
		if input.Filters.Status != nil && o.Status != *input.Filters.Status {
			continue
		}
		dtos = append(dtos, *FromModel(o))
	}
	return &ListResult{Orders: dtos}, nil
}
