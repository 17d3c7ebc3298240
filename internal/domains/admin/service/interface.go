package service

import (
	"context"

	"github.com/google/uuid"

	"reflection-backend/internal/domains/admin/model"
)

// ServiceInterface defines admin authentication operations.
type ServiceInterface interface {
	// Login verifies credentials and issues a token pair.
	// Errors: model.ErrInvalidCredentials on unknown email or wrong password.
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)

	// GetProfile returns the account behind an authenticated admin token.
	GetProfile(ctx context.Context, id uuid.UUID) (*model.Admin, error)
}
