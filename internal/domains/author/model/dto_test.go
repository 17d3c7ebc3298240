package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAuthorRequestValidate(t *testing.T) {
	bio := "I write about distributed systems."
	valid := RegisterAuthorRequest{
		Email: "jane@example.com",
		Name:  "Jane Writer",
		Slug:  "jane-writer",
		Bio:   &bio,
	}
	assert.NoError(t, valid.Validate())

	longBio := strings.Repeat("a", 501)

	tests := []struct {
		name   string
		mutate func(r *RegisterAuthorRequest)
	}{
		{"missing email", func(r *RegisterAuthorRequest) { r.Email = "" }},
		{"bad email", func(r *RegisterAuthorRequest) { r.Email = "not-an-email" }},
		{"name too short", func(r *RegisterAuthorRequest) { r.Name = "J" }},
		{"name too long", func(r *RegisterAuthorRequest) { r.Name = strings.Repeat("a", 101) }},
		{"missing slug", func(r *RegisterAuthorRequest) { r.Slug = "" }},
		{"slug too short", func(r *RegisterAuthorRequest) { r.Slug = "j" }},
		{"slug too long", func(r *RegisterAuthorRequest) { r.Slug = strings.Repeat("a", 51) }},
		{"slug uppercase", func(r *RegisterAuthorRequest) { r.Slug = "Jane-Writer" }},
		{"slug underscore", func(r *RegisterAuthorRequest) { r.Slug = "jane_writer" }},
		{"bio too long", func(r *RegisterAuthorRequest) { r.Bio = &longBio }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			assert.Error(t, r.Validate())
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusApproved.IsValid())
	assert.True(t, StatusRejected.IsValid())
	assert.False(t, Status("BANNED").IsValid())
}
