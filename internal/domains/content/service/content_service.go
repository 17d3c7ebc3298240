package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	authormodel "reflection-backend/internal/domains/author/model"
	authorrepo "reflection-backend/internal/domains/author/repository"
	"reflection-backend/internal/domains/content/model"
	"reflection-backend/internal/domains/content/repository"
	"reflection-backend/internal/shared/utils"
)

type contentService struct {
	repo       repository.RepositoryInterface
	authorRepo authorrepo.RepositoryInterface
	storage    ObjectStorage
}

func NewContentService(repo repository.RepositoryInterface, authorRepo authorrepo.RepositoryInterface, storage ObjectStorage) ServiceInterface {
	return &contentService{
		repo:       repo,
		authorRepo: authorRepo,
		storage:    storage,
	}
}

func (s *contentService) Create(ctx context.Context, authorID uuid.UUID, req *model.CreateContentRequest) (*model.Content, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	author, err := s.authorRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author.Status != authormodel.StatusApproved {
		return nil, model.ErrAuthorNotApproved
	}

	status := model.StatusDraft
	if req.Submit {
		status = model.StatusPendingReview
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}
	if slug == "" {
		return nil, model.ErrInvalidSlug
	}

	c := &model.Content{
		AuthorID: authorID,
		Type:     req.Type,
		Title:    strings.TrimSpace(req.Title),
		Slug:     slug,
		Excerpt:  req.Excerpt,
		Body:     req.Body,
		Access:   req.Access,
		Tags:     tags,
		Status:   status,
	}

	return s.repo.Create(ctx, c)
}

func (s *contentService) GetPublished(ctx context.Context, authorSlug, contentSlug string) (*model.Content, error) {
	author, err := s.approvedAuthor(ctx, authorSlug)
	if err != nil {
		return nil, err
	}

	return s.repo.GetPublishedBySlug(ctx, author.ID, strings.ToLower(strings.TrimSpace(contentSlug)))
}

func (s *contentService) ListPublished(ctx context.Context, authorSlug string, page, limit int) ([]model.Content, int64, error) {
	author, err := s.approvedAuthor(ctx, authorSlug)
	if err != nil {
		return nil, 0, err
	}

	authorID := author.ID.String()
	status := model.StatusPublished
	return s.repo.List(ctx, model.ContentFilter{
		AuthorID: &authorID,
		Status:   &status,
		Page:     page,
		Limit:    limit,
	})
}

func (s *contentService) ListByAuthor(ctx context.Context, authorID uuid.UUID, filter model.ContentFilter) ([]model.Content, int64, error) {
	id := authorID.String()
	filter.AuthorID = &id
	return s.repo.List(ctx, filter)
}

func (s *contentService) ListPendingReview(ctx context.Context, page, limit int) ([]model.Content, int64, error) {
	status := model.StatusPendingReview
	return s.repo.List(ctx, model.ContentFilter{
		Status: &status,
		Page:   page,
		Limit:  limit,
	})
}

func (s *contentService) Submit(ctx context.Context, id, authorID uuid.UUID) (*model.Content, error) {
	return s.repo.SubmitForReview(ctx, id, authorID)
}

func (s *contentService) Archive(ctx context.Context, id, authorID uuid.UUID) (*model.Content, error) {
	return s.repo.Archive(ctx, id, authorID)
}

func (s *contentService) UploadCover(ctx context.Context, id, authorID uuid.UUID, data []byte, contentType string) (string, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if c.AuthorID != authorID {
		return "", model.ErrNotOwner
	}

	key := fmt.Sprintf("covers/%s/%s", authorID, id)
	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to store cover image: %w", err)
	}

	if err := s.repo.UpdateCoverImage(ctx, id, url); err != nil {
		return "", err
	}

	return url, nil
}

func (s *contentService) approvedAuthor(ctx context.Context, slug string) (*authormodel.Author, error) {
	author, err := s.authorRepo.GetBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		return nil, err
	}
	if author.Status != authormodel.StatusApproved {
		return nil, authormodel.ErrAuthorNotFound
	}
	return author, nil
}
