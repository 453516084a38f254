// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import "github.com/MKhiriev/go-content-mirror/models"

// RenderBuildInfo renders the version view of a binary.
func RenderBuildInfo(appName string, info models.AppBuildInfo) string {
	return renderPage(valueOrNA(appName), []row{
		{label: "Version", value: valueOrNA(info.BuildVersion())},
		{label: "Date", value: valueOrNA(info.BuildDate())},
		{label: "Commit", value: valueOrNA(info.BuildCommit())},
	})
}
