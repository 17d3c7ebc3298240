package repository

import (
	"context"

	"github.com/google/uuid"

	"reflection-backend/internal/domains/subscriber/model"
)

// RepositoryInterface defines subscriber ledger data access.
type RepositoryInterface interface {
	// Subscribe creates an ACTIVE subscription, reactivating a previously
	// unsubscribed row for the same (author, email) pair.
	// Errors: model.ErrAlreadySubscribed if the pair is already ACTIVE.
	Subscribe(ctx context.Context, authorID uuid.UUID, email string) (*model.AuthorSubscriber, error)

	// Unsubscribe marks the subscription UNSUBSCRIBED.
	// Errors: model.ErrSubscriptionNotFound.
	Unsubscribe(ctx context.Context, authorID uuid.UUID, email string) error

	// ListActiveByAuthor returns all ACTIVE subscribers of an author.
	// Consulted during newsletter fan-out; never mutated there.
	ListActiveByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.AuthorSubscriber, error)

	// CountActiveByAuthor returns the active subscriber count.
	CountActiveByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error)
}
