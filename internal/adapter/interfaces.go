// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used to pull sync pages from the
// remote content store.
//
// The primary abstraction is [Transport], which decouples the sync
// coordinator from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPTransport]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrRateLimited] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-content-mirror/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Transport fetches a single page of the sync endpoint.
type Transport interface {
	// FetchPage sends one sync request with the given query parameters and
	// returns the decoded page. Cancelling ctx aborts the request. Any
	// failure (network, status code, decoding) is returned as an error;
	// no partial page is returned.
	FetchPage(ctx context.Context, params map[string]string) (models.SyncPage, error)
}

// EndpointPolicy describes capabilities of the configured endpoint.
type EndpointPolicy interface {
	// IsPreview reports whether the endpoint is a preview endpoint. Preview
	// endpoints only serve full syncs; resuming from a token is refused.
	IsPreview() bool
}
