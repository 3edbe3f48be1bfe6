package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map them to HTTP
// statuses; callers match with [errors.Is].
var (
	// ErrInvalidDataProvided indicates a request failed input validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrProfileNotFound indicates no profile matched the requested id or,
	// for login, the supplied credentials. Login deliberately does not
	// distinguish "unknown user" from "wrong password".
	ErrProfileNotFound = errors.New("profile not found")

	// ErrNoActiveSession indicates the session slot is empty or stale.
	ErrNoActiveSession = errors.New("no active session")

	// ErrTokenCreationFailed indicates JWT generation failed.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises every JWT validation failure so
	// callers need not inspect low-level token errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
