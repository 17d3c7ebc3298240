package repository

import (
	"context"

	"github.com/google/uuid"

	"reflection-backend/internal/domains/admin/model"
)

// RepositoryInterface defines admin account data access.
type RepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	// ExistsByID reports whether an admin account with this id exists.
	// Used by the moderation workflow to authorize reviewers.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
