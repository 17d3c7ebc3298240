package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecisionValidate(t *testing.T) {
	tests := []struct {
		name     string
		decision Decision
		wantErr  bool
	}{
		{"approve", Approve(), false},
		{"approve ignores reason", Decision{Action: ActionApprove, Reason: "unused"}, false},
		{"reject with reason", Reject("spam"), false},
		{"reject empty reason", Reject(""), true},
		{"reject whitespace reason", Reject("  \t "), true},
		{"unknown action", Decision{Action: "publish"}, true},
		{"empty action", Decision{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decision.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReviewAuthorRequestToDecision(t *testing.T) {
	d, err := ReviewAuthorRequest{Action: "approve"}.ToDecision()
	require.NoError(t, err)
	assert.True(t, d.IsApprove())

	d, err = ReviewAuthorRequest{Action: "reject", Reason: "plagiarism"}.ToDecision()
	require.NoError(t, err)
	assert.False(t, d.IsApprove())
	assert.Equal(t, "plagiarism", d.Reason)

	_, err = ReviewAuthorRequest{Action: "reject"}.ToDecision()
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ReviewAuthorRequest{Action: "APPROVE"}.ToDecision()
	assert.ErrorIs(t, err, ErrValidation)
}

func TestReviewContentRequestToDecision(t *testing.T) {
	d, err := ReviewContentRequest{Action: "reject", Feedback: "fix the intro"}.ToDecision()
	require.NoError(t, err)
	assert.Equal(t, "fix the intro", d.Reason)

	_, err = ReviewContentRequest{Action: "reject", Feedback: " "}.ToDecision()
	assert.ErrorIs(t, err, ErrValidation)
}
