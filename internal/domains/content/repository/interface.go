package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"reflection-backend/internal/domains/content/model"
)

// RepositoryInterface defines content data access operations.
// The state-changing methods are all compare-and-set on status:
// the expected-status check and the write are a single statement,
// so concurrent transitions on the same row cannot both succeed.
type RepositoryInterface interface {
	// Create inserts a new content item in the given initial status
	// (DRAFT or PENDING_REVIEW).
	// Errors: model.ErrDuplicateSlug on a (author_id, slug) collision.
	Create(ctx context.Context, c *model.Content) (*model.Content, error)

	// GetByID retrieves a content item by id.
	// Errors: model.ErrContentNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Content, error)

	// GetPublishedBySlug retrieves a PUBLISHED item by its owner and slug.
	// Errors: model.ErrContentNotFound (also for non-published items).
	GetPublishedBySlug(ctx context.Context, authorID uuid.UUID, slug string) (*model.Content, error)

	// List lists content items matching the filter, newest first.
	List(ctx context.Context, filter model.ContentFilter) ([]model.Content, int64, error)

	// ReviewIfPending atomically moves the item out of PENDING_REVIEW.
	// Approve sets PUBLISHED with publishedAt; reject sets REJECTED with
	// the feedback. Both record reviewedBy and reviewedAt.
	// Errors: model.ErrContentNotFound, model.ErrAlreadyReviewed.
	ReviewIfPending(ctx context.Context, id uuid.UUID, approve bool, feedback *string, reviewedBy uuid.UUID, reviewedAt time.Time) (*model.Content, error)

	// SubmitForReview moves a DRAFT or REJECTED item owned by authorID
	// into PENDING_REVIEW, clearing any previous rejection feedback.
	// Errors: model.ErrContentNotFound, model.ErrNotOwner,
	// model.ErrInvalidState.
	SubmitForReview(ctx context.Context, id, authorID uuid.UUID) (*model.Content, error)

	// Archive moves a PUBLISHED item owned by authorID into ARCHIVED.
	// Errors: model.ErrContentNotFound, model.ErrNotOwner,
	// model.ErrInvalidState.
	Archive(ctx context.Context, id, authorID uuid.UUID) (*model.Content, error)

	// UpdateCoverImage sets the cover image URL.
	// Errors: model.ErrContentNotFound.
	UpdateCoverImage(ctx context.Context, id uuid.UUID, url string) error
}
