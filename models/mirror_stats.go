package models

// MirrorStats summarises the local mirror after a sync.
type MirrorStats struct {
	Entries        int
	Assets         int
	DeletedEntries int
	DeletedAssets  int
	SyncToken      string
}
