// services/errors.go
package services

import "errors"

var (
	// ErrNotFound is returned when a referenced team, challenge or attempt
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned when an update would move an attempt
	// out of a terminal status.
	ErrInvalidTransition = errors.New("invalid attempt status transition")

	// ErrAttemptInProgress is returned when a user already has an active
	// attempt for the same challenge.
	ErrAttemptInProgress = errors.New("attempt already in progress for this challenge")
)
