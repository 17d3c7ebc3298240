package moderation

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means the caller is not a valid authenticated admin.
	ErrUnauthorized = errors.New("admin authentication required")

	// ErrNotFound means the target author or content does not exist.
	ErrNotFound = errors.New("review target not found")

	// ErrInvalidTransition means the target is not in a reviewable state.
	// Replaying a review after a first success always fails with this:
	// re-approving is an error, never a silent no-op.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrValidation means the decision itself is malformed.
	ErrValidation = errors.New("invalid review decision")
)

func newValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
