package model

import "errors"

var (
	ErrAuthorNotFound  = errors.New("author not found")
	ErrDuplicateEmail  = errors.New("author with this email already exists")
	ErrDuplicateSlug   = errors.New("author with this slug already exists")
	ErrAlreadyReviewed = errors.New("author application already reviewed")
)
