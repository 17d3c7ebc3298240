package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"

	"reflection-backend/internal/shared/utils"
)

// RegisterAuthorRequest - POST /v1/authors/register
type RegisterAuthorRequest struct {
	Email        string           `json:"email"`
	Name         string           `json:"name"`
	Slug         string           `json:"slug"`
	Bio          *string          `json:"bio,omitempty"`
	MonthlyPrice *decimal.Decimal `json:"monthly_price,omitempty"`
}

func (r RegisterAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Slug,
			validation.Required,
			validation.Length(2, 50),
			validation.By(validSlug),
		),
		validation.Field(&r.Bio, validation.Length(0, 500)),
	)
}

func validSlug(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !utils.IsValidSlug(s) {
		return validation.NewError("validation_slug", "must contain only lowercase letters, numbers and hyphens")
	}
	return nil
}

// AuthorFilter controls admin listing of author applications.
type AuthorFilter struct {
	Status *Status
	Page   int
	Limit  int
}

func (f *AuthorFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
}

func (f *AuthorFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
