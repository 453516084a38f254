// Package http implements the fixture server's REST API on top of chi.
//
// It serves the sync endpoint of a single space and environment, plus a small
// write API used to record changes between syncs. Tracing, access logging,
// bearer-token checks and response compression are handled by middleware
// before requests reach the content store.
package http
