package collections

import "errors"

var (
	// ErrAuthRequired means the action needs a known identity, or the acting
	// identity does not own the target. Handlers answer 401.
	ErrAuthRequired = errors.New("sign in required")

	// ErrValidation covers bad input caught before any store call.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound means the entity vanished between list and act (deleted by
	// another tab or flow). Handlers answer 404 so the client can fall back
	// to a safe parent view.
	ErrNotFound = errors.New("not found")
)
