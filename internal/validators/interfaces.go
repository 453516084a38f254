// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks sync pages and resources against the rules of the
// sync protocol.
//
// A [Validator] validates a value and can be restricted to a subset of named
// fields, so callers enforce only the rules that apply to their side of the
// protocol: the transport checks pages coming from the server, the fixture
// store checks resources written to it.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
