package services

import "errors"

// Recoverable outcomes the controllers translate into HTTP statuses.
// Anything not in this taxonomy is treated as a storage failure.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrMealNotFound   = errors.New("meal not found")
	ErrDuplicateEmail = errors.New("this email has been associated with another user")
)
