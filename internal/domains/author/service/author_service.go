package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"reflection-backend/internal/domains/author/model"
	"reflection-backend/internal/domains/author/repository"
)

type authorService struct {
	repo repository.RepositoryInterface
}

func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) Register(ctx context.Context, req *model.RegisterAuthorRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	price := decimal.Zero
	if req.MonthlyPrice != nil {
		price = *req.MonthlyPrice
	}

	a := &model.Author{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         strings.TrimSpace(req.Name),
		Slug:         strings.ToLower(strings.TrimSpace(req.Slug)),
		Bio:          req.Bio,
		MonthlyPrice: price,
		Status:       model.StatusPending,
	}

	return s.repo.Create(ctx, a)
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetApprovedBySlug(ctx context.Context, slug string) (*model.Author, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, model.ErrAuthorNotFound
	}

	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if a.Status != model.StatusApproved {
		// Pending and rejected applications are invisible to readers.
		return nil, model.ErrAuthorNotFound
	}

	return a, nil
}

func (s *authorService) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error) {
	return s.repo.GetAll(ctx, filter)
}

func (s *authorService) ListApproved(ctx context.Context, page, limit int) ([]model.Author, int64, error) {
	status := model.StatusApproved
	return s.repo.GetAll(ctx, model.AuthorFilter{
		Status: &status,
		Page:   page,
		Limit:  limit,
	})
}
