package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{SpaceID: "env-space", AccessToken: "env-token"}},
		&StructuredConfig{App: App{SpaceID: "flag-space"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag-space", cfg.App.SpaceID)
	assert.Equal(t, "env-token", cfg.App.AccessToken, "zero fields must not override")
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestBuilder_EnvFlagsJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"http_address": "https://json.example.com", "request_timeout": "45s"},
		"workers": map[string]any{"sync_interval": "2m"},
	})
	t.Setenv("APP_SPACE_ID", "env-space")
	t.Setenv("ADAPTER_ADDRESS", "https://env.example.com")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-token", "flag-token", "-c", path}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "env-space", cfg.App.SpaceID)
	assert.Equal(t, "flag-token", cfg.App.AccessToken)
	assert.Equal(t, "https://json.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
}

func TestBuilder_MissingJSONFile(t *testing.T) {
	_, err := newConfigBuilder().
		withFlags([]string{"-c", "/does/not/exist.json"}).
		withJSON().
		build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestBuilder_BadFlags(t *testing.T) {
	_, err := newConfigBuilder().withFlags([]string{"-sync-interval", "often"}).build()
	assert.Error(t, err)
}

// ── views ─────────────────────────────────────────────────────────────────────

func validStructured() *StructuredConfig {
	return &StructuredConfig{
		App:     App{SpaceID: "space", AccessToken: "token"},
		Adapter: Adapter{HTTPAddress: "https://cdn.example.com"},
		Storage: Storage{DB: DB{DSN: "mirror.db"}},
	}
}

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg := NewClientConfig(validStructured())

	assert.Equal(t, "master", cfg.App.Environment)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 64, cfg.Workers.SinkBuffer)
	assert.False(t, cfg.Adapter.IsPreview())
	assert.NoError(t, cfg.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
		want   error
	}{
		{name: "missing space", mutate: func(c *StructuredConfig) { c.App.SpaceID = "" }, want: ErrInvalidAppConfigs},
		{name: "missing token", mutate: func(c *StructuredConfig) { c.App.AccessToken = "" }, want: ErrInvalidAppConfigs},
		{name: "unknown sync type", mutate: func(c *StructuredConfig) { c.App.SyncType = "locales" }, want: ErrInvalidAppConfigs},
		{name: "entries_of without content type", mutate: func(c *StructuredConfig) { c.App.SyncType = "entries_of" }, want: ErrInvalidAppConfigs},
		{name: "no scheme", mutate: func(c *StructuredConfig) { c.Adapter.HTTPAddress = "cdn.example.com" }, want: ErrInvalidAdapterConfigs},
		{name: "negative rate", mutate: func(c *StructuredConfig) { c.Adapter.RateLimit = -1 }, want: ErrInvalidAdapterConfigs},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, want: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = ":memory:" }, want: ErrInvalidStorageConfigs},
		{name: "negative interval", mutate: func(c *StructuredConfig) { c.Workers.SyncInterval = -time.Second }, want: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := validStructured()
			tt.mutate(sc)
			assert.ErrorIs(t, NewClientConfig(sc).validate(), tt.want)
		})
	}
}

func TestNewFixtureConfig(t *testing.T) {
	cfg := NewFixtureConfig(&StructuredConfig{App: App{SpaceID: "space"}})

	assert.Equal(t, "localhost:8089", cfg.HTTPAddress)
	assert.Equal(t, 100, cfg.PageSize)
	assert.Equal(t, "master", cfg.Environment)
	assert.NoError(t, cfg.validate())

	assert.ErrorIs(t, NewFixtureConfig(&StructuredConfig{}).validate(), ErrInvalidFixtureConfigs)
}
