package config

import (
	"fmt"
	"time"
)

const (
	defaultEnvironment    = "master"
	defaultRequestTimeout = 30 * time.Second
	defaultSinkBuffer     = 64
	defaultFixtureAddress = "localhost:8089"
	defaultFixturePage    = 100
)

// ClientApp holds the space coordinates and sync scope used by the client.
type ClientApp struct {
	SpaceID     string
	AccessToken string
	Environment string
	SyncType    string
	ContentType string
	LogLevel    string
	LogFile     string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the sync API.
	HTTPAddress string
	// Preview marks HTTPAddress as a preview endpoint.
	Preview bool
	// RequestTimeout is the timeout of a single page request.
	RequestTimeout time.Duration
	// RateLimit caps requests per second; zero disables throttling.
	RateLimit float64
	// MaxRetries is how many times a rate-limited request is retried.
	MaxRetries int
}

// IsPreview reports whether the configured endpoint is a preview endpoint,
// which only serves full syncs.
func (a ClientAdapter) IsPreview() bool {
	return a.Preview
}

// ClientDB contains mirror database connection settings for the client.
type ClientDB struct {
	// DSN is a SQLite file path or a postgres:// connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the periodic sync runs; zero runs once.
	SyncInterval time.Duration
	// SinkBuffer is the capacity of the persistence queue.
	SinkBuffer int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// FixtureConfig is the configuration of the fixture sync server.
type FixtureConfig struct {
	HTTPAddress string
	PageSize    int
	SeedFile    string
	SpaceID     string
	Environment string
	AccessToken string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields relevant to the client runtime and fills in
// defaults for optional settings.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			SpaceID:     cfg.App.SpaceID,
			AccessToken: cfg.App.AccessToken,
			Environment: cfg.App.Environment,
			SyncType:    cfg.App.SyncType,
			ContentType: cfg.App.ContentType,
			LogLevel:    cfg.App.LogLevel,
			LogFile:     cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			Preview:        cfg.Adapter.Preview,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RateLimit:      cfg.Adapter.RateLimit,
			MaxRetries:     cfg.Adapter.MaxRetries,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
			SinkBuffer:   cfg.Workers.SinkBuffer,
		},
	}

	if clientCfg.App.Environment == "" {
		clientCfg.App.Environment = defaultEnvironment
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.Workers.SinkBuffer == 0 {
		clientCfg.Workers.SinkBuffer = defaultSinkBuffer
	}

	return clientCfg
}

// GetFixtureConfig builds the fixture server configuration.
func GetFixtureConfig() (*FixtureConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	fixtureCfg := NewFixtureConfig(cfg)
	return fixtureCfg, fixtureCfg.validate()
}

// NewFixtureConfig maps the fixture-related fields and fills in defaults.
func NewFixtureConfig(cfg *StructuredConfig) *FixtureConfig {
	fixtureCfg := &FixtureConfig{
		HTTPAddress: cfg.Fixture.HTTPAddress,
		PageSize:    cfg.Fixture.PageSize,
		SeedFile:    cfg.Fixture.SeedFile,
		SpaceID:     cfg.App.SpaceID,
		Environment: cfg.App.Environment,
		AccessToken: cfg.App.AccessToken,
	}

	if fixtureCfg.HTTPAddress == "" {
		fixtureCfg.HTTPAddress = defaultFixtureAddress
	}
	if fixtureCfg.PageSize == 0 {
		fixtureCfg.PageSize = defaultFixturePage
	}
	if fixtureCfg.Environment == "" {
		fixtureCfg.Environment = defaultEnvironment
	}

	return fixtureCfg
}
