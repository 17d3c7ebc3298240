package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"reflection-backend/internal/domains/author/model"
)

// RepositoryInterface defines author data access operations.
type RepositoryInterface interface {
	// Create inserts a new PENDING author application.
	// Errors: model.ErrDuplicateEmail, model.ErrDuplicateSlug.
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// GetByID retrieves an author by id.
	// Errors: model.ErrAuthorNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// GetBySlug retrieves an author by slug.
	// Errors: model.ErrAuthorNotFound.
	GetBySlug(ctx context.Context, slug string) (*model.Author, error)

	// GetAll lists authors matching the filter, newest first,
	// plus the total count for pagination.
	GetAll(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error)

	// ReviewIfPending atomically moves the author out of PENDING.
	// The status check and the write are a single compare-and-set:
	// of two concurrent reviews exactly one succeeds.
	// reason must be non-nil iff newStatus is REJECTED.
	// Errors: model.ErrAuthorNotFound if the id does not exist,
	// model.ErrAlreadyReviewed if the stored status is not PENDING.
	ReviewIfPending(ctx context.Context, id uuid.UUID, newStatus model.Status, reason *string, reviewedAt time.Time) (*model.Author, error)
}
