package moderation

import (
	"strings"

	"github.com/google/uuid"
)

// Action is a review verdict.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// Decision is an admin's verdict on a pending author or content item.
// Reason is required for rejections and ignored for approvals.
type Decision struct {
	Action Action
	Reason string
}

func Approve() Decision {
	return Decision{Action: ActionApprove}
}

func Reject(reason string) Decision {
	return Decision{Action: ActionReject, Reason: reason}
}

func (d Decision) IsApprove() bool {
	return d.Action == ActionApprove
}

// Validate enforces the decision invariants: a known action, and a
// non-blank reason on reject.
func (d Decision) Validate() error {
	switch d.Action {
	case ActionApprove:
		return nil
	case ActionReject:
		if strings.TrimSpace(d.Reason) == "" {
			return newValidationError("a rejection requires a non-empty reason")
		}
		return nil
	}
	return newValidationError("action must be \"approve\" or \"reject\"")
}

// AdminPrincipal identifies the authenticated admin performing a review.
// The id is recorded for audit attribution on content reviews.
type AdminPrincipal struct {
	ID uuid.UUID
}
