package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// config file.
type StructuredJSONConfig struct {
	App struct {
		SpaceID     string `json:"space_id"`
		AccessToken string `json:"access_token"`
		Environment string `json:"environment"`
		SyncType    string `json:"sync_type"`
		ContentType string `json:"content_type"`
		LogLevel    string `json:"log_level"`
		LogFile     string `json:"log_file"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		Preview        bool     `json:"preview"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		MaxRetries     int      `json:"max_retries"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
		SinkBuffer   int      `json:"sink_buffer"`
	} `json:"workers,omitempty"`

	Fixture struct {
		HTTPAddress string `json:"http_address"`
		PageSize    int    `json:"page_size"`
		SeedFile    string `json:"seed_file"`
	} `json:"fixture,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SpaceID:     jsonCfg.App.SpaceID,
			AccessToken: jsonCfg.App.AccessToken,
			Environment: jsonCfg.App.Environment,
			SyncType:    jsonCfg.App.SyncType,
			ContentType: jsonCfg.App.ContentType,
			LogLevel:    jsonCfg.App.LogLevel,
			LogFile:     jsonCfg.App.LogFile,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			Preview:        jsonCfg.Adapter.Preview,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			RateLimit:      jsonCfg.Adapter.RateLimit,
			MaxRetries:     jsonCfg.Adapter.MaxRetries,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
			SinkBuffer:   jsonCfg.Workers.SinkBuffer,
		},
		Fixture: Fixture{
			HTTPAddress: jsonCfg.Fixture.HTTPAddress,
			PageSize:    jsonCfg.Fixture.PageSize,
			SeedFile:    jsonCfg.Fixture.SeedFile,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
