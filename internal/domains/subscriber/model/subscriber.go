package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Status of one reader's subscription to one author's newsletter stream.
type Status string

const (
	StatusActive       Status = "ACTIVE"
	StatusUnsubscribed Status = "UNSUBSCRIBED"
)

// AuthorSubscriber ties a reader email to an author's newsletter.
// At most one row exists per (author_id, email).
type AuthorSubscriber struct {
	ID        uuid.UUID `json:"id" db:"id"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id"`
	Email     string    `json:"email" db:"email"`
	Status    Status    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SubscribeRequest - POST /v1/authors/:slug/subscribe
type SubscribeRequest struct {
	Email string `json:"email"`
}

func (r SubscribeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}
