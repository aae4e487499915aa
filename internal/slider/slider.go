package slider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/db/models"
	pkgerrors "github.com/aliamzad3333/ecommerce-web-sub000/pkg/errors"
)

// SlideDTO is the transport shape for a homepage carousel entry.
type SlideDTO struct {
	ID        uuid.UUID `json:"id"`
	Title     *string   `json:"title,omitempty"`
	ImageURL  string    `json:"image_url"`
	LinkURL   *string   `json:"link_url,omitempty"`
	Position  int       `json:"position"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSlideInput holds the validated payload to create a slide.
type CreateSlideInput struct {
	Title    *string
	ImageURL string
	LinkURL  *string
	Position int
	IsActive bool
}

// UpdateSlideInput holds optional mutation values for a slide.
type UpdateSlideInput struct {
	Title    *string
	ImageURL *string
	LinkURL  *string
	Position *int
	IsActive *bool
}

// Service serves the public carousel and its back-office management.
type Service interface {
	ListActive(ctx context.Context) ([]SlideDTO, error)
	ListAll(ctx context.Context) ([]SlideDTO, error)
	Create(ctx context.Context, input CreateSlideInput) (*SlideDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateSlideInput) (*SlideDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository interface {
	List(ctx context.Context, activeOnly bool) ([]models.Slide, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Slide, error)
	Create(ctx context.Context, slide *models.Slide) (*models.Slide, error)
	Update(ctx context.Context, slide *models.Slide) (*models.Slide, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type service struct {
	repo repository
}

// NewService constructs a slider service with the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("slider repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListActive(ctx context.Context) ([]SlideDTO, error) {
	return s.list(ctx, true)
}

func (s *service) ListAll(ctx context.Context) ([]SlideDTO, error) {
	return s.list(ctx, false)
}

func (s *service) list(ctx context.Context, activeOnly bool) ([]SlideDTO, error) {
	rows, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list slides")
	}
	dtos := make([]SlideDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *fromModel(&rows[i]))
	}
	return dtos, nil
}

func (s *service) Create(ctx context.Context, input CreateSlideInput) (*SlideDTO, error) {
	imageURL := strings.TrimSpace(input.ImageURL)
	if imageURL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image_url is required")
	}

	created, err := s.repo.Create(ctx, &models.Slide{
		Title:    input.Title,
		ImageURL: imageURL,
		LinkURL:  input.LinkURL,
		Position: input.Position,
		IsActive: input.IsActive,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create slide")
	}
	return fromModel(created), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateSlideInput) (*SlideDTO, error) {
	slide, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "slide not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup slide")
	}

	if input.Title != nil {
		slide.Title = input.Title
	}
	if input.ImageURL != nil {
		imageURL := strings.TrimSpace(*input.ImageURL)
		if imageURL == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "image_url cannot be blank")
		}
		slide.ImageURL = imageURL
	}
	if input.LinkURL != nil {
		slide.LinkURL = input.LinkURL
	}
	if input.Position != nil {
		slide.Position = *input.Position
	}
	if input.IsActive != nil {
		slide.IsActive = *input.IsActive
	}

	updated, err := s.repo.Update(ctx, slide)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update slide")
	}
	return fromModel(updated), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete slide")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "slide not found")
	}
	return nil
}

func fromModel(s *models.Slide) *SlideDTO {
	return &SlideDTO{
		ID:        s.ID,
		Title:     s.Title,
		ImageURL:  s.ImageURL,
		LinkURL:   s.LinkURL,
		Position:  s.Position,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// Repository is the GORM-backed slide store.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a slider repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns slides ordered by position.
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]models.Slide, error) {
	qb := r.db.WithContext(ctx).Model(&models.Slide{})
	if activeOnly {
		qb = qb.Where("is_active")
	}
	var rows []models.Slide
	err := qb.Order("position ASC").Order("created_at ASC").Find(&rows).Error
	return rows, err
}

// FindByID loads a slide by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Slide, error) {
	var slide models.Slide
	if err := r.db.WithContext(ctx).First(&slide, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &slide, nil
}

// Create inserts a new slide row.
func (r *Repository) Create(ctx context.Context, slide *models.Slide) (*models.Slide, error) {
	if err := r.db.WithContext(ctx).Create(slide).Error; err != nil {
		return nil, err
	}
	return slide, nil
}

// Update saves an existing slide row.
func (r *Repository) Update(ctx context.Context, slide *models.Slide) (*models.Slide, error) {
	if err := r.db.WithContext(ctx).Save(slide).Error; err != nil {
		return nil, err
	}
	return slide, nil
}

// Delete removes a slide row and reports how many rows changed.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Slide{})
	return result.RowsAffected, result.Error
}
