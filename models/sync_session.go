package models

import (
	"maps"
	"slices"
	"sync/atomic"
)

// SyncMode is the sync mode implied by a session's token and pagination state.
type SyncMode int

const (
	// ModeFull is an initial sync: no token yet, not paginating.
	ModeFull SyncMode = iota
	// ModeContinuation is the next page of a chain that is already in progress.
	ModeContinuation
	// ModeIncremental resumes from the token of a previously completed chain.
	ModeIncremental
)

func (m SyncMode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeContinuation:
		return "continuation"
	case ModeIncremental:
		return "incremental"
	default:
		return "unknown"
	}
}

// SyncSession owns the sync token and the diffs accumulated over one or more
// sync chains.
//
// A session belongs to a single caller. It is mutated in place by every page
// merge and must not be handed to two sync chains at the same time; the
// coordinator enforces this with [SyncSession.Acquire].
type SyncSession struct {
	syncToken    string
	hasMorePages bool

	entries         map[string]Resource
	assets          map[string]Resource
	deletedEntryIDs map[string]struct{}
	deletedAssetIDs map[string]struct{}

	inUse atomic.Bool
}

// NewSyncSession returns an empty session; the first chain run on it is a full sync.
func NewSyncSession() *SyncSession {
	return &SyncSession{
		entries:         make(map[string]Resource),
		assets:          make(map[string]Resource),
		deletedEntryIDs: make(map[string]struct{}),
		deletedAssetIDs: make(map[string]struct{}),
	}
}

// RestoreSyncSession returns a session resuming from a persisted token.
// With a non-empty token the next chain is an incremental sync.
func RestoreSyncSession(syncToken string) *SyncSession {
	s := NewSyncSession()
	s.syncToken = syncToken
	return s
}

// SyncToken returns the token received with the last merged page.
func (s *SyncSession) SyncToken() string {
	return s.syncToken
}

// HasMorePages reports whether the last merged page announced a continuation.
func (s *SyncSession) HasMorePages() bool {
	return s.hasMorePages
}

// Mode derives the sync mode from the token and pagination state.
func (s *SyncSession) Mode() SyncMode {
	switch {
	case s.hasMorePages:
		return ModeContinuation
	case s.syncToken == "":
		return ModeFull
	default:
		return ModeIncremental
	}
}

// MergeDiffs folds page into the session and takes over its token and
// pagination flag.
//
// Items are applied in arrival order. A live entry or asset replaces the
// previously known state for its id and clears an earlier deletion; a deletion
// drops the known state and records the id. Applying the same page twice
// leaves the session unchanged.
func (s *SyncSession) MergeDiffs(page SyncPage) {
	for _, item := range page.Items {
		id := item.ID()
		switch item.Sys.Type {
		case KindEntry:
			s.entries[id] = item
			delete(s.deletedEntryIDs, id)
		case KindAsset:
			s.assets[id] = item
			delete(s.deletedAssetIDs, id)
		case KindDeletedEntry:
			delete(s.entries, id)
			s.deletedEntryIDs[id] = struct{}{}
		case KindDeletedAsset:
			delete(s.assets, id)
			s.deletedAssetIDs[id] = struct{}{}
		}
	}

	s.syncToken = page.SyncToken()
	s.hasMorePages = page.HasMorePages()
}

// RequestParameters builds the session-derived part of the next request.
//
// Mid-pagination only the page token is returned: the type selection was fixed
// by the first request of the chain and must not be resent. Otherwise the
// token of the last completed chain is returned, or the initial flag when
// there is none.
func (s *SyncSession) RequestParameters() map[string]string {
	if s.hasMorePages || s.syncToken != "" {
		return map[string]string{ParamSyncToken: s.syncToken}
	}
	return map[string]string{ParamInitial: "true"}
}

// Entry returns the last known state of the entry with the given id.
func (s *SyncSession) Entry(id string) (Resource, bool) {
	r, ok := s.entries[id]
	return r, ok
}

// Asset returns the last known state of the asset with the given id.
func (s *SyncSession) Asset(id string) (Resource, bool) {
	r, ok := s.assets[id]
	return r, ok
}

// Entries returns a copy of the accumulated entries keyed by id.
func (s *SyncSession) Entries() map[string]Resource {
	return maps.Clone(s.entries)
}

// Assets returns a copy of the accumulated assets keyed by id.
func (s *SyncSession) Assets() map[string]Resource {
	return maps.Clone(s.assets)
}

// DeletedEntryIDs returns the ids of deleted entries in sorted order.
func (s *SyncSession) DeletedEntryIDs() []string {
	return slices.Sorted(maps.Keys(s.deletedEntryIDs))
}

// DeletedAssetIDs returns the ids of deleted assets in sorted order.
func (s *SyncSession) DeletedAssetIDs() []string {
	return slices.Sorted(maps.Keys(s.deletedAssetIDs))
}

// Acquire marks the session as used by a sync chain. It returns false if
// another chain already holds it.
func (s *SyncSession) Acquire() bool {
	return s.inUse.CompareAndSwap(false, true)
}

// Release ends the chain started by a successful [SyncSession.Acquire].
func (s *SyncSession) Release() {
	s.inUse.Store(false)
}
