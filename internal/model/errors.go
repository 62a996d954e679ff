package model

import "errors"

var (
	// ErrNotFound is returned by stores and caches when the requested
	// record or key does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The HTTP boundary must not reveal which one it was;
	// internal logs may.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateEmail is returned when registering an email that is
	// already taken, either at the pre-check or at creation time.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrTokenIssuance means signing one of the tokens failed. No cache
	// write happens after it.
	ErrTokenIssuance = errors.New("token issuance failed")

	// ErrTokenCache means a cache write failed after both tokens were
	// signed. The login still fails: issued-but-unrecorded is not a
	// valid outcome.
	ErrTokenCache = errors.New("token cache write failed")

	// ErrStoreUnavailable wraps backing-store transport failures. Not
	// retried here; retry policy belongs to the caller.
	ErrStoreUnavailable = errors.New("store unavailable")
)
