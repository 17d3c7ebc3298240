package service

import (
	"context"

	"github.com/google/uuid"

	"reflection-backend/internal/domains/author/model"
)

// ServiceInterface defines author directory operations.
type ServiceInterface interface {
	// Register creates a new PENDING author application.
	// Errors: validation errors, model.ErrDuplicateEmail, model.ErrDuplicateSlug.
	Register(ctx context.Context, req *model.RegisterAuthorRequest) (*model.Author, error)

	// GetByID retrieves an author regardless of status (admin use).
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// GetApprovedBySlug retrieves an author for public pages.
	// Non-approved authors are reported as not found.
	GetApprovedBySlug(ctx context.Context, slug string) (*model.Author, error)

	// List lists author applications for the admin back-office.
	List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error)

	// ListApproved lists approved authors for the public directory.
	ListApproved(ctx context.Context, page, limit int) ([]model.Author, int64, error)
}
