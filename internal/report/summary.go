package report

import (
	"strconv"
	"time"

	"github.com/MKhiriev/go-content-mirror/models"
)

const tokenWidth = 40

// Summary describes one run of the mirror client.
type Summary struct {
	Mode     models.SyncMode
	Types    models.SyncableTypes
	Duration time.Duration

	// Session holds the diffs accumulated in memory during the run.
	Session *models.SyncSession
	// Stats is the state of the local mirror after the run. Nil when the
	// store could not be read.
	Stats *models.MirrorStats

	// Degraded is set when the persistence sink lost pages; the stored token
	// was then left at the last complete chain.
	Degraded bool
	Err      error
}

// RenderSummary renders s as a boxed table.
func RenderSummary(s Summary) string {
	rows := []row{
		{label: "Mode", value: s.Mode.String()},
		{label: "Types", value: s.Types.String()},
		{label: "Duration", value: s.Duration.Round(time.Millisecond).String()},
	}

	if s.Session != nil {
		rows = append(rows,
			row{label: "Entries synced", value: strconv.Itoa(len(s.Session.Entries()))},
			row{label: "Assets synced", value: strconv.Itoa(len(s.Session.Assets()))},
			row{label: "Entries deleted", value: strconv.Itoa(len(s.Session.DeletedEntryIDs()))},
			row{label: "Assets deleted", value: strconv.Itoa(len(s.Session.DeletedAssetIDs()))},
		)
	}

	if s.Stats != nil {
		rows = append(rows,
			row{label: "Mirror entries", value: strconv.Itoa(s.Stats.Entries)},
			row{label: "Mirror assets", value: strconv.Itoa(s.Stats.Assets)},
			row{label: "Mirror tombstones", value: strconv.Itoa(s.Stats.DeletedEntries + s.Stats.DeletedAssets)},
			row{label: "Sync token", value: fitText(valueOrNA(s.Stats.SyncToken), tokenWidth)},
		)
	}

	status := okStyle.Render("ok")
	switch {
	case s.Err != nil:
		status = errorStyle.Render("failed: " + s.Err.Error())
	case s.Degraded:
		status = errorStyle.Render("degraded: some pages were not stored")
	}
	rows = append(rows, row{label: "Status", value: status})

	return renderPage("Content mirror sync", rows)
}
