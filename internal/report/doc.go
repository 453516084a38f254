// Package report renders the human-readable output of the mirror CLI: the
// summary printed after a sync run and the build information view.
package report
