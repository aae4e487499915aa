package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/enums"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/types"
)

// Order represents a submitted customer order. Monetary columns carry the
// breakdown exactly as priced at submission time.
type Order struct {
	ID              uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderNumber     int64                 `gorm:"column:order_number;not null;uniqueIndex;default:nextval('order_number_seq')"`
	UserID          *uuid.UUID            `gorm:"column:user_id;type:uuid"`
	CustomerName    string                `gorm:"column:customer_name;not null"`
	Phone           string                `gorm:"column:phone;not null"`
	ShippingAddress types.ShippingAddress `gorm:"column:shipping_address;type:jsonb;serializer:json"`
	ShippingZone    enums.ShippingZone    `gorm:"column:shipping_zone;type:text;not null"`
	Note            *string               `gorm:"column:note"`
	Status          enums.OrderStatus     `gorm:"column:status;type:text;not null;default:'pending'"`
	PaymentMethod   enums.PaymentMethod   `gorm:"column:payment_method;type:text;not null;default:'cash'"`
	Subtotal        decimal.Decimal       `gorm:"column:subtotal;type:numeric(10,2);not null"`
	ShippingCost    decimal.Decimal       `gorm:"column:shipping_cost;type:numeric(10,2);not null"`
	Tax             decimal.Decimal       `gorm:"column:tax;type:numeric(10,2);not null"`
	Total           decimal.Decimal       `gorm:"column:total;type:numeric(10,2);not null"`
	Items           []OrderItem           `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	PlacedAt        time.Time             `gorm:"column:placed_at;not null"`
	CreatedAt       time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
