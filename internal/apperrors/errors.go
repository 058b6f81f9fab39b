package apperrors

import "errors"

// ErrNotFound indicates that a requested record could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a record that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNoBadgeAvailable indicates that no badge in the pool covers the requested
// access zones. This is an expected outcome requiring an operator decision,
// not a system failure.
var ErrNoBadgeAvailable = errors.New("no compatible badge available")

// ErrInvalidTransition indicates an attempt to move a record through a status
// transition its state machine does not allow.
var ErrInvalidTransition = errors.New("invalid status transition")
