package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"reflection-backend/internal/domains/admin/model"
	"reflection-backend/internal/domains/admin/repository"
	"reflection-backend/pkg/jwt"
)

type adminService struct {
	repo       repository.RepositoryInterface
	jwtManager *jwt.Manager
}

func NewAdminService(repo repository.RepositoryInterface, jwtManager *jwt.Manager) ServiceInterface {
	return &adminService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *adminService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrAdminNotFound) {
			// Same error for unknown email and wrong password.
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(admin.ID.String(), admin.Email, "admin")
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(admin.ID.String())
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Admin:        admin.ToResponse(),
	}, nil
}

func (s *adminService) GetProfile(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	if id == uuid.Nil {
		return nil, model.ErrAdminNotFound
	}
	return s.repo.GetByID(ctx, id)
}
