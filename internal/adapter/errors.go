package adapter

import "errors"

// Sentinel errors for HTTP status codes returned by the sync endpoint.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRateLimited         = errors.New("rate limit exceeded")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// ErrDecodePage is returned when the response body is not a valid sync page.
var ErrDecodePage = errors.New("decode sync page")

// ErrInvalidAddress is returned by [NewHTTPTransport] for an unusable base URL.
var ErrInvalidAddress = errors.New("invalid adapter http address")
