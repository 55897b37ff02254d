package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrDuplicateRequest      = errors.New("request with this idempotency key was already handled")
	ErrAlreadyCheckedIn      = errors.New("check-in for this date already exists")
	ErrInsufficientStudyTime = errors.New("not enough study time recorded for this date")
	ErrCheckInDateNotAllowed = errors.New("check-in date is in the future")
	ErrInvalidSource         = errors.New("unknown check-in source")

	ErrAlreadyTracking  = errors.New("tracking session already in progress")
	ErrNoActiveTracking = errors.New("no active tracking session")

	ErrGroupNotFound = errors.New("group doesn't exists")

	ErrStorageUnavailable = errors.New("storage is unavailable")
	ErrCacheUnavailable   = errors.New("cache is unavailable")
)
