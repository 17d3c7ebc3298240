package service

import (
	"context"

	"reflection-backend/internal/domains/subscriber/model"
)

// ServiceInterface defines subscriber ledger operations.
type ServiceInterface interface {
	// Subscribe adds a reader to an approved author's newsletter.
	Subscribe(ctx context.Context, authorSlug string, req *model.SubscribeRequest) (*model.AuthorSubscriber, error)

	// Unsubscribe removes a reader from an author's newsletter.
	Unsubscribe(ctx context.Context, authorSlug, email string) error
}
