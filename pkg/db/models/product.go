package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/enums"
)

// Product represents a catalog listing.
type Product struct {
	ID             uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SKU            string                `gorm:"column:sku;not null;uniqueIndex"`
	Name           string                `gorm:"column:name;not null"`
	Slug           string                `gorm:"column:slug;not null;uniqueIndex"`
	Description    *string               `gorm:"column:description"`
	Category       enums.ProductCategory `gorm:"column:category;type:text;not null"`
	Tags           pq.StringArray        `gorm:"column:tags;type:text[];not null;default:ARRAY[]::text[]"`
	Price          decimal.Decimal       `gorm:"column:price;type:numeric(10,2);not null"`
	CompareAtPrice *decimal.Decimal      `gorm:"column:compare_at_price;type:numeric(10,2)"`
	Stock          int                   `gorm:"column:stock;not null;default:0"`
	ImageURL       *string               `gorm:"column:image_url"`
	IsActive       bool                  `gorm:"column:is_active;not null;default:true"`
	IsFeatured     bool                  `gorm:"column:is_featured;not null;default:false"`
	CreatedAt      time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
