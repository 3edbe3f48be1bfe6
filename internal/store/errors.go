// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Avi Malewar

package store

import "errors"

var (
	// ErrKeyNotFound is returned by [KeyValue.Get] when the requested key has
	// never been set or has been removed.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNoProfileFound is returned by login when no stored user record
	// matches the supplied credentials. Deliberately indistinguishable from
	// "wrong password": no user enumeration protection is attempted.
	ErrNoProfileFound = errors.New("no profile was found")

	// ErrNoActiveSession is returned when the session slot is empty or points
	// at a profile that no longer exists.
	ErrNoActiveSession = errors.New("no active session")

	// ErrExecutingQuery wraps driver-level failures of the SQL substrate.
	ErrExecutingQuery = errors.New("error executing query")
)
