// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the mirror client application runtime.
//
// It restores the sync session from the local mirror, runs a sync, keeps the
// mirror up to date on a schedule when asked to, and prints a summary of the
// run on exit.
package client
