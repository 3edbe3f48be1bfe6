package oracle

import "errors"

var (
	// ErrOracleUnavailable indicates a transport-level failure: the request
	// never completed or the API answered with a non-2xx status.
	ErrOracleUnavailable = errors.New("vibe oracle unavailable")

	// ErrMalformedVerdict indicates the API answered but the payload could
	// not be decoded into the expected verdict schema.
	ErrMalformedVerdict = errors.New("malformed oracle verdict")

	// ErrNotConfigured indicates the oracle was constructed without an API
	// key; vibe analysis is disabled for this deployment.
	ErrNotConfigured = errors.New("oracle is not configured")
)
