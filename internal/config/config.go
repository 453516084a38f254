// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the content space coordinates, credentials and sync scope.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote endpoint and transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local mirror database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Fixture holds settings for the local fixture sync server.
	Fixture Fixture `envPrefix:"FIXTURE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the space coordinates and sync scope.
type App struct {
	// SpaceID identifies the content space to mirror.
	// Env: APP_SPACE_ID
	SpaceID string `env:"SPACE_ID"`

	// AccessToken is the bearer token sent with every sync request.
	// Env: APP_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// Environment is the environment id inside the space ("master" if empty).
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// SyncType restricts a full sync to one resource kind
	// (all, entries, assets, entries_of, deletions, deleted_entries, deleted_assets).
	// Env: APP_SYNC_TYPE
	SyncType string `env:"SYNC_TYPE"`

	// ContentType is the content type id used with SyncType "entries_of".
	// Env: APP_CONTENT_TYPE
	ContentType string `env:"CONTENT_TYPE"`

	// LogLevel is the minimum level written by the client logger.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the client logger writes; empty means next to the binary.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the remote endpoint settings.
type Adapter struct {
	// HTTPAddress is the base URL of the content delivery (or preview) API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Preview marks HTTPAddress as a preview endpoint. Preview endpoints only
	// serve full syncs.
	// Env: ADAPTER_PREVIEW
	Preview bool `env:"PREVIEW"`

	// RequestTimeout bounds a single page request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit caps outgoing requests per second; zero disables throttling.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// MaxRetries is how many times a rate-limited request is retried.
	// Env: ADAPTER_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`
}

// Storage groups the configuration of the local mirror.
type Storage struct {
	// DB holds the mirror database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the mirror database.
type DB struct {
	// DSN is either a SQLite file path or a postgres:// connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval makes the client re-sync periodically; zero runs once.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// SinkBuffer is the number of pages the persistence worker may queue.
	// Env: WORKERS_SINK_BUFFER
	SinkBuffer int `env:"SINK_BUFFER"`
}

// Fixture holds settings of the local fixture sync server.
type Fixture struct {
	// HTTPAddress is the host:port the fixture server listens on.
	// Env: FIXTURE_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// PageSize is the number of items per served page.
	// Env: FIXTURE_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// SeedFile is an optional JSON file with the initial resources.
	// Env: FIXTURE_SEED_FILE
	SeedFile string `env:"SEED_FILE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
