package controllers

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aliamzad3333/ecommerce-web-sub000/api/responses"
	"github.com/aliamzad3333/ecommerce-web-sub000/api/validators"
	"github.com/aliamzad3333/ecommerce-web-sub000/internal/products"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/enums"
	pkgerrors "github.com/aliamzad3333/ecommerce-web-sub000/pkg/errors"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/logger"
)

type createProductRequest struct {
	SKU            string           `json:"sku" validate:"required"`
	Name           string           `json:"name" validate:"required"`
	Description    *string          `json:"description,omitempty"`
	Category       string           `json:"category" validate:"required"`
	Tags           []string         `json:"tags,omitempty"`
	Price          decimal.Decimal  `json:"price" validate:"required"`
	CompareAtPrice *decimal.Decimal `json:"compare_at_price,omitempty"`
	Stock          int              `json:"stock" validate:"gte=0"`
	ImageURL       *string          `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive       *bool            `json:"is_active,omitempty"`
	IsFeatured     bool             `json:"is_featured,omitempty"`
}

type updateProductRequest struct {
	SKU            *string          `json:"sku,omitempty"`
	Name           *string          `json:"name,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Category       *string          `json:"category,omitempty"`
	Tags           *[]string        `json:"tags,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	CompareAtPrice *decimal.Decimal `json:"compare_at_price,omitempty"`
	Stock          *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	ImageURL       *string          `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive       *bool            `json:"is_active,omitempty"`
	IsFeatured     *bool            `json:"is_featured,omitempty"`
}

// AdminListProducts serves the back-office catalog including inactive rows.
func AdminListProducts(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		input, err := parseProductListInput(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input.IncludeInactive = true

		result, err := svc.List(r.Context(), *input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AdminGetProduct fetches one product by id for editing.
func AdminGetProduct(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := uuidURLParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AdminCreateProduct adds a product to the catalog.
func AdminCreateProduct(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var body createProductRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := enums.ParseProductCategory(body.Category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category"))
			return
		}

		isActive := true
		if body.IsActive != nil {
			isActive = *body.IsActive
		}

		result, err := svc.Create(r.Context(), products.CreateProductInput{
			SKU:            body.SKU,
			Name:           body.Name,
			Description:    body.Description,
			Category:       category,
			Tags:           body.Tags,
			Price:          body.Price,
			CompareAtPrice: body.CompareAtPrice,
			Stock:          body.Stock,
			ImageURL:       body.ImageURL,
			IsActive:       isActive,
			IsFeatured:     body.IsFeatured,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// AdminUpdateProduct applies a partial update to a product.
func AdminUpdateProduct(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := uuidURLParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateProductRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := products.UpdateProductInput{
			SKU:            body.SKU,
			Name:           body.Name,
			Description:    body.Description,
			Tags:           body.Tags,
			Price:          body.Price,
			CompareAtPrice: body.CompareAtPrice,
			Stock:          body.Stock,
			ImageURL:       body.ImageURL,
			IsActive:       body.IsActive,
			IsFeatured:     body.IsFeatured,
		}

		if body.Category != nil {
			category, err := enums.ParseProductCategory(strings.TrimSpace(*body.Category))
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category"))
				return
			}
			input.Category = &category
		}

		result, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AdminDeleteProduct retires a product from the catalog.
func AdminDeleteProduct(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := uuidURLParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
