package model

import "errors"

var (
	ErrAlreadySubscribed    = errors.New("already subscribed")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
