package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransition(t *testing.T) {
	allowed := map[Status][]Status{
		StatusDraft:         {StatusPendingReview},
		StatusPendingReview: {StatusPublished, StatusRejected},
		StatusRejected:      {StatusPendingReview},
		StatusPublished:     {StatusArchived},
		StatusArchived:      {},
	}

	all := []Status{StatusDraft, StatusPendingReview, StatusPublished, StatusRejected, StatusArchived}

	for from, targets := range allowed {
		ok := make(map[Status]bool)
		for _, to := range targets {
			ok[to] = true
		}
		for _, to := range all {
			assert.Equal(t, ok[to], from.CanTransition(to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestCreateContentRequestValidate(t *testing.T) {
	valid := CreateContentRequest{
		Type:   TypeNewsletter,
		Title:  "Weekly Letter",
		Slug:   "weekly-letter",
		Body:   "hello readers",
		Access: AccessFree,
		Tags:   []string{"letters", "weekly"},
	}
	assert.NoError(t, valid.Validate())

	// Slug may be omitted entirely; one is derived from the title later.
	noSlug := valid
	noSlug.Slug = ""
	assert.NoError(t, noSlug.Validate())

	tests := []struct {
		name   string
		mutate func(r *CreateContentRequest)
	}{
		{"missing title", func(r *CreateContentRequest) { r.Title = "" }},
		{"missing body", func(r *CreateContentRequest) { r.Body = "" }},
		{"bad type", func(r *CreateContentRequest) { r.Type = "PODCAST" }},
		{"bad access", func(r *CreateContentRequest) { r.Access = "MEMBERS" }},
		{"uppercase slug", func(r *CreateContentRequest) { r.Slug = "Weekly-Letter" }},
		{"slug with spaces", func(r *CreateContentRequest) { r.Slug = "weekly letter" }},
		{"slug too short", func(r *CreateContentRequest) { r.Slug = "a" }},
		{"too many tags", func(r *CreateContentRequest) {
			r.Tags = make([]string, 11)
			for i := range r.Tags {
				r.Tags[i] = "t"
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			assert.Error(t, r.Validate())
		})
	}
}
