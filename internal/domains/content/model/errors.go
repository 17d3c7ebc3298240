package model

import "errors"

var (
	ErrContentNotFound   = errors.New("content not found")
	ErrDuplicateSlug     = errors.New("content with this slug already exists for this author")
	ErrInvalidSlug       = errors.New("a slug could not be derived from the title")
	ErrAlreadyReviewed   = errors.New("content already reviewed")
	ErrInvalidState      = errors.New("content is not in a state that allows this operation")
	ErrNotOwner          = errors.New("content is owned by another author")
	ErrAuthorNotApproved = errors.New("author is not approved to publish")
)
