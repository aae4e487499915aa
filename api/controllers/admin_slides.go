package controllers

import (
	"net/http"

	"github.com/aliamzad3333/ecommerce-web-sub000/api/responses"
	"github.com/aliamzad3333/ecommerce-web-sub000/api/validators"
	"github.com/aliamzad3333/ecommerce-web-sub000/internal/slider"
	pkgerrors "github.com/aliamzad3333/ecommerce-web-sub000/pkg/errors"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/logger"
)

type createSlideRequest struct {
	Title    *string `json:"title,omitempty"`
	ImageURL string  `json:"image_url" validate:"required,url"`
	LinkURL  *string `json:"link_url,omitempty" validate:"omitempty,url"`
	Position int     `json:"position" validate:"gte=0"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type updateSlideRequest struct {
	Title    *string `json:"title,omitempty"`
	ImageURL *string `json:"image_url,omitempty" validate:"omitempty,url"`
	LinkURL  *string `json:"link_url,omitempty" validate:"omitempty,url"`
	Position *int    `json:"position,omitempty" validate:"omitempty,gte=0"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// AdminListSlides returns every slide, active or not, in display order.
func AdminListSlides(svc slider.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "slider service unavailable"))
			return
		}

		result, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"slides": result})
	}
}

// AdminCreateSlide adds a slide to the homepage carousel.
func AdminCreateSlide(svc slider.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "slider service unavailable"))
			return
		}

		var body createSlideRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		isActive := true
		if body.IsActive != nil {
			isActive = *body.IsActive
		}

		result, err := svc.Create(r.Context(), slider.CreateSlideInput{
			Title:    body.Title,
			ImageURL: body.ImageURL,
			LinkURL:  body.LinkURL,
			Position: body.Position,
			IsActive: isActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// AdminUpdateSlide applies a partial update to a slide.
func AdminUpdateSlide(svc slider.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "slider service unavailable"))
			return
		}

		id, err := uuidURLParam(r, "slideId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateSlideRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Update(r.Context(), id, slider.UpdateSlideInput{
			Title:    body.Title,
			ImageURL: body.ImageURL,
			LinkURL:  body.LinkURL,
			Position: body.Position,
			IsActive: body.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AdminDeleteSlide removes a slide from the carousel.
func AdminDeleteSlide(svc slider.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "slider service unavailable"))
			return
		}

		id, err := uuidURLParam(r, "slideId")
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
