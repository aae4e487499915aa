package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/db/models"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/enums"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/pagination"
)

// ProductDTO is the transport shape for a single catalog listing.
type ProductDTO struct {
	ID             uuid.UUID             `json:"id"`
	SKU            string                `json:"sku"`
	Name           string                `json:"name"`
	Slug           string                `json:"slug"`
	Description    *string               `json:"description,omitempty"`
	Category       enums.ProductCategory `json:"category"`
	Tags           []string              `json:"tags"`
	Price          decimal.Decimal       `json:"price"`
	CompareAtPrice *decimal.Decimal      `json:"compare_at_price,omitempty"`
	Stock          int                   `json:"stock"`
	InStock        bool                  `json:"in_stock"`
	ImageURL       *string               `json:"image_url,omitempty"`
	IsActive       bool                  `json:"is_active"`
	IsFeatured     bool                  `json:"is_featured"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// ListFilters describe the supported filter knobs for the browse endpoint.
type ListFilters struct {
	Category   *enums.ProductCategory `json:"category,omitempty"`
	PriceMin   *decimal.Decimal       `json:"price_min,omitempty"`
	PriceMax   *decimal.Decimal       `json:"price_max,omitempty"`
	IsFeatured *bool                  `json:"is_featured,omitempty"`
	Query      string                 `json:"q,omitempty"`
}

// ListInput captures the inputs needed to paginate and filter the catalog.
type ListInput struct {
	Filters         ListFilters
	Pagination      pagination.Params
	IncludeInactive bool
}

// ListResult is one page of catalog listings plus the cursor for the next page.
type ListResult struct {
	Products   []ProductDTO `json:"products"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	SKU            string
	Name           string
	Description    *string
	Category       enums.ProductCategory
	Tags           []string
	Price          decimal.Decimal
	CompareAtPrice *decimal.Decimal
	Stock          int
	ImageURL       *string
	IsActive       bool
	IsFeatured     bool
}

// UpdateProductInput holds optional mutation values for a product.
type UpdateProductInput struct {
	SKU            *string
	Name           *string
	Description    *string
	Category       *enums.ProductCategory
	Tags           *[]string
	Price          *decimal.Decimal
	CompareAtPrice *decimal.Decimal
	Stock          *int
	ImageURL       *string
	IsActive       *bool
	IsFeatured     *bool
}

// FromModel converts a persistence model into the transport shape.
func FromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:             p.ID,
		SKU:            p.SKU,
		Name:           p.Name,
		Slug:           p.Slug,
		Description:    p.Description,
		Category:       p.Category,
		Tags:           append([]string(nil), p.Tags...),
		Price:          p.Price,
		CompareAtPrice: p.CompareAtPrice,
		Stock:          p.Stock,
		InStock:        p.Stock > 0,
		ImageURL:       p.ImageURL,
		IsActive:       p.IsActive,
		IsFeatured:     p.IsFeatured,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
