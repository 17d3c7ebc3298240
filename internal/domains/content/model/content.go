package model

import (
	"time"

	"github.com/google/uuid"
)

// ContentType is the kind of publishable unit.
type ContentType string

const (
	TypeNewsletter ContentType = "NEWSLETTER"
	TypeBlog       ContentType = "BLOG"
	TypeArticle    ContentType = "ARTICLE"
)

func (t ContentType) IsValid() bool {
	switch t {
	case TypeNewsletter, TypeBlog, TypeArticle:
		return true
	}
	return false
}

// Access controls whether a piece is behind the author's paywall.
type Access string

const (
	AccessFree Access = "FREE"
	AccessPaid Access = "PAID"
)

func (a Access) IsValid() bool {
	return a == AccessFree || a == AccessPaid
}

// Status of a content item.
//
// DRAFT → PENDING_REVIEW → {PUBLISHED, REJECTED}
// REJECTED → PENDING_REVIEW (author resubmission)
// PUBLISHED → ARCHIVED (author-initiated, terminal)
type Status string

const (
	StatusDraft         Status = "DRAFT"
	StatusPendingReview Status = "PENDING_REVIEW"
	StatusPublished     Status = "PUBLISHED"
	StatusRejected      Status = "REJECTED"
	StatusArchived      Status = "ARCHIVED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPendingReview, StatusPublished, StatusRejected, StatusArchived:
		return true
	}
	return false
}

// CanTransition reports whether the state machine permits moving
// from s to target.
func (s Status) CanTransition(target Status) bool {
	switch s {
	case StatusDraft:
		return target == StatusPendingReview
	case StatusPendingReview:
		return target == StatusPublished || target == StatusRejected
	case StatusRejected:
		return target == StatusPendingReview
	case StatusPublished:
		return target == StatusArchived
	}
	return false
}

// Content is a single publishable unit owned by exactly one author.
type Content struct {
	ID       uuid.UUID   `json:"id" db:"id"`
	AuthorID uuid.UUID   `json:"author_id" db:"author_id"`
	Type     ContentType `json:"type" db:"type"`

	Title         string   `json:"title" db:"title"`
	Slug          string   `json:"slug" db:"slug"` // unique per (author_id, slug)
	Excerpt       *string  `json:"excerpt,omitempty" db:"excerpt"`
	Body          string   `json:"body" db:"body"`
	CoverImageURL *string  `json:"cover_image_url,omitempty" db:"cover_image_url"`
	Access        Access   `json:"access" db:"access"`
	Tags          []string `json:"tags" db:"tags"`

	Status            Status     `json:"status" db:"status"`
	RejectionFeedback *string    `json:"rejection_feedback,omitempty" db:"rejection_feedback"`
	ReviewedBy        *uuid.UUID `json:"reviewed_by,omitempty" db:"reviewed_by"`
	ReviewedAt        *time.Time `json:"reviewed_at,omitempty" db:"reviewed_at"`
	PublishedAt       *time.Time `json:"published_at,omitempty" db:"published_at"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PublicResponse is the reader-facing shape, without moderation fields.
type PublicResponse struct {
	ID            uuid.UUID   `json:"id"`
	AuthorID      uuid.UUID   `json:"author_id"`
	Type          ContentType `json:"type"`
	Title         string      `json:"title"`
	Slug          string      `json:"slug"`
	Excerpt       *string     `json:"excerpt,omitempty"`
	Body          string      `json:"body"`
	CoverImageURL *string     `json:"cover_image_url,omitempty"`
	Access        Access      `json:"access"`
	Tags          []string    `json:"tags"`
	PublishedAt   *time.Time  `json:"published_at,omitempty"`
}

func (c *Content) ToPublicResponse() PublicResponse {
	return PublicResponse{
		ID:            c.ID,
		AuthorID:      c.AuthorID,
		Type:          c.Type,
		Title:         c.Title,
		Slug:          c.Slug,
		Excerpt:       c.Excerpt,
		Body:          c.Body,
		CoverImageURL: c.CoverImageURL,
		Access:        c.Access,
		Tags:          c.Tags,
		PublishedAt:   c.PublishedAt,
	}
}
