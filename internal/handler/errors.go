// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when the fixture
	// configuration has no HTTP address to serve on.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoContentStore is returned by NewHandlers when no content store is
	// given to serve from.
	errNoContentStore = errors.New("no content store to serve")
)
