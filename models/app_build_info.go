// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

const notAvailable = "N/A"

// AppBuildInfo is the version metadata linked into cmd/mirror and
// cmd/fixture with -ldflags "-X main.buildVersion=...".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }
func (a AppBuildInfo) BuildDate() string    { return a.date }
func (a AppBuildInfo) BuildCommit() string  { return a.commit }

// String formats the build as "version (commit, date)", with N/A for
// missing values.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", orNotAvailable(a.version), orNotAvailable(a.commit), orNotAvailable(a.date))
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
