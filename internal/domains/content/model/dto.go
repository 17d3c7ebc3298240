package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"reflection-backend/internal/shared/utils"
)

// CreateContentRequest - POST /v1/author/content
type CreateContentRequest struct {
	Type  ContentType `json:"type"`
	Title string      `json:"title"`

	// Slug is optional; when empty one is derived from the title.
	Slug    string   `json:"slug,omitempty"`
	Excerpt *string  `json:"excerpt,omitempty"`
	Body    string   `json:"body"`
	Access  Access   `json:"access"`
	Tags    []string `json:"tags,omitempty"`

	// Submit skips DRAFT and creates the item directly in PENDING_REVIEW.
	Submit bool `json:"submit"`
}

func (r CreateContentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.Required, validation.By(validContentType)),
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Slug,
			validation.Length(2, 100),
			validation.By(validSlug),
		),
		validation.Field(&r.Excerpt, validation.Length(0, 300)),
		validation.Field(&r.Body, validation.Required),
		validation.Field(&r.Access, validation.Required, validation.By(validAccess)),
		validation.Field(&r.Tags, validation.Length(0, 10), validation.Each(validation.Length(1, 50))),
	)
}

func validContentType(value interface{}) error {
	t, _ := value.(ContentType)
	if !t.IsValid() {
		return validation.NewError("validation_content_type", "must be NEWSLETTER, BLOG or ARTICLE")
	}
	return nil
}

func validAccess(value interface{}) error {
	a, _ := value.(Access)
	if !a.IsValid() {
		return validation.NewError("validation_access", "must be FREE or PAID")
	}
	return nil
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

// ContentFilter controls listing of content items.
type ContentFilter struct {
	AuthorID *string
	Status   *Status
	Type     *ContentType
	Page     int
	Limit    int
}

func (f *ContentFilter) Normalize() {
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

func (f *ContentFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
