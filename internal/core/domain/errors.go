package domain

import "errors"

// Auth failures. ErrInvalidToken deliberately covers bad signature,
// malformed payload and expiry alike so callers cannot probe which part
// failed. ErrInvalidCredentials covers both unknown email and password
// mismatch for the same reason.
var (
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrMissingCredential  = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// User errors.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already in use")
)

// Exercise errors. ErrExerciseGone marks a soft-deleted exercise fetched
// by id; list endpoints silently filter inactive rows instead.
var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrExerciseGone      = errors.New("exercise is deleted")
	ErrExerciseNameTaken = errors.New("exercise name already exists")
)

// Workout errors.
var (
	ErrWorkoutNotFound         = errors.New("workout not found")
	ErrWorkoutExerciseNotFound = errors.New("workout exercise not found")
	ErrInvalidWorkoutDate      = errors.New("invalid date format, use yyyy-mm-dd")
)
