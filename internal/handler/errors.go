// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Avi Malewar

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration does not provide an HTTP address, resulting in no transport
// handlers being initialized. This is treated as a fatal misconfiguration and
// causes the application to fail at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
