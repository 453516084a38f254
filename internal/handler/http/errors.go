// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request has no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header cannot be
	// split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the token part of the header is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidAccessToken is returned when the token does not match the
	// configured access token.
	ErrInvalidAccessToken = errors.New("invalid access token")
)

// errUnknownEnvironment is returned for a space or environment the server
// does not serve.
var errUnknownEnvironment = errors.New("the resource could not be found")
