package service

import (
	"context"
	"strings"

	authormodel "reflection-backend/internal/domains/author/model"
	authorrepo "reflection-backend/internal/domains/author/repository"
	"reflection-backend/internal/domains/subscriber/model"
	"reflection-backend/internal/domains/subscriber/repository"
)

type subscriberService struct {
	repo       repository.RepositoryInterface
	authorRepo authorrepo.RepositoryInterface
}

func NewSubscriberService(repo repository.RepositoryInterface, authorRepo authorrepo.RepositoryInterface) ServiceInterface {
	return &subscriberService{
		repo:       repo,
		authorRepo: authorRepo,
	}
}

func (s *subscriberService) Subscribe(ctx context.Context, authorSlug string, req *model.SubscribeRequest) (*model.AuthorSubscriber, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	author, err := s.approvedAuthor(ctx, authorSlug)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	return s.repo.Subscribe(ctx, author.ID, email)
}

func (s *subscriberService) Unsubscribe(ctx context.Context, authorSlug, email string) error {
	author, err := s.approvedAuthor(ctx, authorSlug)
	if err != nil {
		return err
	}

	return s.repo.Unsubscribe(ctx, author.ID, strings.ToLower(strings.TrimSpace(email)))
}

func (s *subscriberService) approvedAuthor(ctx context.Context, slug string) (*authormodel.Author, error) {
	author, err := s.authorRepo.GetBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		return nil, err
	}
	if author.Status != authormodel.StatusApproved {
		return nil, authormodel.ErrAuthorNotFound
	}
	return author, nil
}
