package service

import (
	"context"

	"github.com/google/uuid"

	"reflection-backend/internal/domains/content/model"
)

// ObjectStorage is the slice of the storage layer this service needs.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ServiceInterface defines content store operations.
type ServiceInterface interface {
	// Create creates a new content item for an approved author,
	// as DRAFT or directly in PENDING_REVIEW when req.Submit is set.
	Create(ctx context.Context, authorID uuid.UUID, req *model.CreateContentRequest) (*model.Content, error)

	// GetPublished resolves a public content page by author slug and
	// content slug. Only PUBLISHED items of APPROVED authors resolve.
	GetPublished(ctx context.Context, authorSlug, contentSlug string) (*model.Content, error)

	// ListPublished lists an author's published content for readers.
	ListPublished(ctx context.Context, authorSlug string, page, limit int) ([]model.Content, int64, error)

	// ListByAuthor lists an author's own content, any status.
	ListByAuthor(ctx context.Context, authorID uuid.UUID, filter model.ContentFilter) ([]model.Content, int64, error)

	// ListPendingReview lists the admin review queue.
	ListPendingReview(ctx context.Context, page, limit int) ([]model.Content, int64, error)

	// Submit moves a DRAFT or REJECTED item into PENDING_REVIEW.
	Submit(ctx context.Context, id, authorID uuid.UUID) (*model.Content, error)

	// Archive moves a PUBLISHED item into ARCHIVED.
	Archive(ctx context.Context, id, authorID uuid.UUID) (*model.Content, error)

	// UploadCover stores a cover image and attaches it to the item.
	UploadCover(ctx context.Context, id, authorID uuid.UUID, data []byte, contentType string) (string, error)
}
