package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aliamzad3333/ecommerce-web-sub000/internal/orders"
	"github.com/aliamzad3333/ecommerce-web-sub000/internal/products"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/db"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/db/models"
)

// ErrInsufficientStock is returned when a line cannot be fulfilled from the
// remaining inventory. The order transaction rolls back so nothing is kept.
type ErrInsufficientStock struct {
	ProductID uuid.UUID
	Name      string
}

func (e ErrInsufficientStock) Error() string {
	return fmt.Sprintf("insufficient stock for product %s", e.ProductID)
}

// Repository persists checkout submissions atomically.
type Repository struct {
	client   *db.Client
	products *products.Repository
	orders   *orders.Repository
}

// NewRepository builds a checkout repository on top of the DB client.
func NewRepository(client *db.Client) *Repository {
	return &Repository{
		client:   client,
		products: products.NewRepository(client.DB()),
		orders:   orders.NewRepository(client.DB()),
	}
}

// FindActiveProducts loads the active catalog rows referenced by the cart.
func (r *Repository) FindActiveProducts(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	return r.products.FindActiveByIDs(ctx, ids)
}

// SubmitOrder decrements stock for every line and inserts the order with its
// item snapshots in one transaction.
func (r *Repository) SubmitOrder(ctx context.Context, order *models.Order) error {
	return r.client.WithTx(ctx, func(tx *gorm.DB) error {
		productRepo := r.products.WithTx(tx)
		for _, item := range order.Items {
			if item.ProductID == nil {
				continue
			}
			ok, err := productRepo.DecrementStock(ctx, *item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInsufficientStock{ProductID: *item.ProductID, Name: item.Name}
			}
		}
		_, err := r.orders.WithTx(tx).Create(ctx, order)
		return err
	})
}
