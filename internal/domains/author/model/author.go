package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status of an author application. PENDING is the only non-terminal state:
// once an application is approved or rejected it never changes again.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Author is a publishing identity, distinct from the login identity.
type Author struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Email string    `json:"email" db:"email"`
	Name  string    `json:"name" db:"name"`
	Slug  string    `json:"slug" db:"slug"`
	Bio   *string   `json:"bio" db:"bio"`

	// Monthly subscription price for paid content, in USD.
	MonthlyPrice decimal.Decimal `json:"monthly_price" db:"monthly_price"`

	Status          Status     `json:"status" db:"status"`
	RejectionReason *string    `json:"rejection_reason,omitempty" db:"rejection_reason"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty" db:"reviewed_at"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsReviewed reports whether the application has left PENDING.
func (a *Author) IsReviewed() bool {
	return a.Status != StatusPending
}

// AuthorResponse is the public API shape of an author.
type AuthorResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Bio          *string         `json:"bio,omitempty"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (a *Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:           a.ID,
		Name:         a.Name,
		Slug:         a.Slug,
		Bio:          a.Bio,
		MonthlyPrice: a.MonthlyPrice,
		CreatedAt:    a.CreatedAt,
	}
}

// AdminAuthorResponse includes the moderation fields hidden from readers.
type AdminAuthorResponse struct {
	AuthorResponse
	Email           string     `json:"email"`
	Status          Status     `json:"status"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
}

func (a *Author) ToAdminResponse() AdminAuthorResponse {
	return AdminAuthorResponse{
		AuthorResponse:  a.ToResponse(),
		Email:           a.Email,
		Status:          a.Status,
		RejectionReason: a.RejectionReason,
		ReviewedAt:      a.ReviewedAt,
	}
}
