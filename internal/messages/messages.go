package messages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/db/models"
	pkgerrors "github.com/aliamzad3333/ecommerce-web-sub000/pkg/errors"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/pagination"
)

// SubmitRequest is the contact-form payload.
type SubmitRequest struct {
	Name  string  `json:"name" validate:"required"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`
	Body  string  `json:"body" validate:"required"`
}

// MessageDTO is the transport shape for a contact-form submission.
type MessageDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// ListResult is one page of messages plus the cursor for the next page.
type ListResult struct {
	Messages   []MessageDTO `json:"messages"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// Service accepts contact-form submissions and serves the admin inbox.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*MessageDTO, error)
	List(ctx context.Context, page pagination.Params) (*ListResult, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository interface {
	Create(ctx context.Context, message *models.Message) (*models.Message, error)
	List(ctx context.Context, page pagination.Params) ([]models.Message, string, error)
	MarkRead(ctx context.Context, id uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type service struct {
	repo repository
}

// NewService constructs a message service with the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("message repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (*MessageDTO, error) {
	name := strings.TrimSpace(req.Name)
	body := strings.TrimSpace(req.Body)
	if name == "" || body == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name and body are required")
	}

	created, err := s.repo.Create(ctx, &models.Message{
		Name:  name,
		Email: req.Email,
		Phone: req.Phone,
		Body:  body,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create message")
	}
	return fromModel(created), nil
}

func (s *service) List(ctx context.Context, page pagination.Params) (*ListResult, error) {
	rows, nextCursor, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list messages")
	}
	dtos := make([]MessageDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *fromModel(&rows[i]))
	}
	return &ListResult{Messages: dtos, NextCursor: nextCursor}, nil
}

func (s *service) MarkRead(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mark message read")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "message not found")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete message")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "message not found")
	}
	return nil
}

func fromModel(m *models.Message) *MessageDTO {
	return &MessageDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Body:      m.Body,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

// Repository is the GORM-backed message store.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a messages repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new message row.
func (r *Repository) Create(ctx context.Context, message *models.Message) (*models.Message, error) {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// List returns one page of messages, newest first.
func (r *Repository) List(ctx context.Context, page pagination.Params) ([]models.Message, string, error) {
	pageSize := pagination.NormalizeLimit(page.Limit)
	cursor, err := pagination.ParseCursor(page.Cursor)
	if err != nil {
		return nil, "", err
	}

	qb := r.db.WithContext(ctx).Model(&models.Message{})
	if cursor != nil {
		qb = qb.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Message
	err = qb.Order("created_at DESC").Order("id DESC").
		Limit(pagination.LimitWithBuffer(page.Limit)).
		Find(&rows).
		Error
	if err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if len(rows) > pageSize {
		rows = rows[:pageSize]
		last := rows[len(rows)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return rows, nextCursor, nil
}

// MarkRead flips the is_read flag and reports how many rows changed.
func (r *Repository) MarkRead(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("id = ?", id).
		UpdateColumn("is_read", true)
	return result.RowsAffected, result.Error
}

// Delete removes a message row and reports how many rows changed.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Message{})
	return result.RowsAffected, result.Error
}
