package errorvalues

import "errors"

// Users
var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Goals, sections, updates, streaks
var (
	ErrGoalNotFound           = errors.New("goal doesn't exist")
	ErrSectionNotFound        = errors.New("section doesn't exist")
	ErrOwnerNotFound          = errors.New("owner doesn't exist")
	ErrWrongOwner             = errors.New("entity belongs to another user")
	ErrStreakConflict         = errors.New("streak was modified concurrently")
	ErrEmptyContent           = errors.New("update content is empty")
	ErrValidation             = errors.New("validation error")
	ErrInvalidDuration        = errors.New("expected duration must be positive")
	ErrInvalidDate            = errors.New("invalid date")
	ErrMissingDurationInput   = errors.New("neither expected duration nor target date provided")
	ErrIllegalTransition      = errors.New("illegal goal status transition")
	ErrStatusChangedMeanwhile = errors.New("goal status was changed concurrently")
)

// Wraps every failure reported by the storage layer, so callers can tell
// infrastructure errors from contract violations with errors.Is.
var ErrPersistenceFailure = errors.New("persistence failure")
