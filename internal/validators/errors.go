package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyBranch      = errors.New("branch is required")
	ErrEmptyBio         = errors.New("bio is required")
	ErrInvalidLifestyle = errors.New("invalid lifestyle")
	ErrEmptyCredential  = errors.New("credential is required")
)
