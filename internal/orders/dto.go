package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/db/models"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/enums"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/pagination"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/types"
)

// OrderDTO is the transport shape for a submitted order.
type OrderDTO struct {
	ID              uuid.UUID             `json:"id"`
	OrderNumber     int64                 `json:"order_number"`
	UserID          *uuid.UUID            `json:"user_id,omitempty"`
	CustomerName    string                `json:"customer_name"`
	Phone           string                `json:"phone"`
	ShippingAddress types.ShippingAddress `json:"shipping_address"`
	ShippingZone    enums.ShippingZone    `json:"shipping_zone"`
	Note            *string               `json:"note,omitempty"`
	Status          enums.OrderStatus     `json:"status"`
	PaymentMethod   enums.PaymentMethod   `json:"payment_method"`
	Subtotal        decimal.Decimal       `json:"subtotal"`
	ShippingCost    decimal.Decimal       `json:"shipping_cost"`
	Tax             decimal.Decimal       `json:"tax"`
	Total           decimal.Decimal       `json:"total"`
	Items           []OrderItemDTO        `json:"items"`
	PlacedAt        time.Time             `json:"placed_at"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// OrderItemDTO is the snapshot of one purchased line.
type OrderItemDTO struct {
	ID        uuid.UUID       `json:"id"`
	ProductID *uuid.UUID      `json:"product_id,omitempty"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
	ImageURL  *string         `json:"image_url,omitempty"`
}

// ListFilters describe the admin order list filter knobs.
type ListFilters struct {
	Status *enums.OrderStatus `json:"status,omitempty"`
	UserID *uuid.UUID         `json:"user_id,omitempty"`
}

// ListInput captures the inputs needed to paginate orders.
type ListInput struct {
	Filters    ListFilters
	Pagination pagination.Params
}

// ListResult is one page of orders plus the cursor for the next page.
type ListResult struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

// FromModel converts a persistence model into the transport shape.
func FromModel(o *models.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	items := make([]OrderItemDTO, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, itemFromModel(&o.Items[i]))
	}
	return &OrderDTO{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		UserID:          o.UserID,
		CustomerName:    o.CustomerName,
		Phone:           o.Phone,
		ShippingAddress: o.ShippingAddress,
		ShippingZone:    o.ShippingZone,
		Note:            o.Note,
		Status:          o.Status,
		PaymentMethod:   o.PaymentMethod,
		Subtotal:        o.Subtotal,
		ShippingCost:    o.ShippingCost,
		Tax:             o.Tax,
		Total:           o.Total,
		Items:           items,
		PlacedAt:        o.PlacedAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func itemFromModel(item *models.OrderItem) OrderItemDTO {
	return OrderItemDTO{
		ID:        item.ID,
		ProductID: item.ProductID,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		Quantity:  item.Quantity,
		LineTotal: item.LineTotal,
		ImageURL:  item.ImageURL,
	}
}
