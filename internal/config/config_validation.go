// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/go-content-mirror/models"
)

func (cfg *ClientConfig) validate() error {
	if cfg.App.SpaceID == "" || cfg.App.AccessToken == "" {
		return ErrInvalidAppConfigs
	}
	if _, err := models.ParseSyncableTypes(cfg.App.SyncType, cfg.App.ContentType); err != nil {
		return ErrInvalidAppConfigs
	}

	if !isHTTPURL(cfg.Adapter.HTTPAddress) || cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.RateLimit < 0 || cfg.Adapter.MaxRetries < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.SyncInterval < 0 || cfg.Workers.SinkBuffer < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *FixtureConfig) validate() error {
	if cfg.SpaceID == "" || cfg.PageSize < 1 {
		return ErrInvalidFixtureConfigs
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
