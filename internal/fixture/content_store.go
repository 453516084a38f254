// Package fixture implements an in-memory content store that speaks the sync
// protocol. It backs the fixture server used for local runs and end-to-end
// tests of the mirror client.
package fixture

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-content-mirror/internal/utils"
	"github.com/MKhiriev/go-content-mirror/internal/validators"
	"github.com/MKhiriev/go-content-mirror/models"
)

const defaultPageSize = 100

type resourceKey struct {
	kind models.ResourceKind
	id   string
}

// change is the latest state of one resource and the sequence number it was
// recorded at. Tombstones are kept so incremental syncs can report them.
type change struct {
	seq      int64
	resource models.Resource
}

// cursor is the server-side state behind a sync token. A page cursor carries
// the remaining items of a chain; a sync cursor only the position to resume
// from. prev is the token whose request issued this one.
type cursor struct {
	filter Filter
	since  int64
	prev   string

	items  []models.Resource
	offset int
	paging bool
}

// SyncRequest is one request of a sync chain.
type SyncRequest struct {
	Initial bool
	Token   string
	Filter  Filter
}

// SyncResult is one page of a sync chain. Exactly one of the tokens is set.
type SyncResult struct {
	Items         []models.Resource
	NextPageToken string
	NextSyncToken string
}

// ContentStore keeps entries and assets with a change log and serves sync
// chains over them.
type ContentStore struct {
	mu       sync.Mutex
	seq      int64
	latest   map[resourceKey]change
	cursors  map[string]*cursor
	pageSize int

	ids       *utils.UUIDGenerator
	validator validators.Validator
	now       func() time.Time
}

// NewContentStore returns an empty store that serves pages of pageSize items.
func NewContentStore(pageSize int) *ContentStore {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &ContentStore{
		latest:    make(map[resourceKey]change),
		cursors:   make(map[string]*cursor),
		pageSize:  pageSize,
		ids:       utils.NewUUIDGenerator(),
		validator: validators.NewResourceValidator(),
		now:       time.Now,
	}
}

// Put creates or updates an entry or asset and returns the stored version.
// The revision is bumped on every call.
func (s *ContentStore) Put(r models.Resource) (models.Resource, error) {
	err := s.validator.Validate(context.Background(), r,
		validators.FieldID, validators.FieldLiveKind, validators.FieldContentType, validators.FieldFields)
	if err != nil {
		return models.Resource{}, fmt.Errorf("%w: %w", ErrInvalidResource, err)
	}
	if r.Sys.Type == models.KindAsset {
		r.Sys.ContentType = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := resourceKey{kind: r.Sys.Type, id: r.ID()}
	now := s.now().UTC()

	r.Sys.Revision = 1
	r.Sys.CreatedAt = &now
	if prev, ok := s.latest[key]; ok && !prev.resource.Sys.Type.IsDeletion() {
		r.Sys.Revision = prev.resource.Sys.Revision + 1
		r.Sys.CreatedAt = prev.resource.Sys.CreatedAt
	}
	r.Sys.UpdatedAt = &now
	r.Sys.DeletedAt = nil

	s.record(key, r)
	return r, nil
}

// Delete removes an entry or asset and records a tombstone for it.
func (s *ContentStore) Delete(kind models.ResourceKind, id string) error {
	var tombstone models.ResourceKind
	switch kind {
	case models.KindEntry:
		tombstone = models.KindDeletedEntry
	case models.KindAsset:
		tombstone = models.KindDeletedAsset
	default:
		return fmt.Errorf("%w: type %q", ErrInvalidResource, kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := resourceKey{kind: kind, id: id}
	prev, ok := s.latest[key]
	if !ok || prev.resource.Sys.Type.IsDeletion() {
		return fmt.Errorf("%w: %s %q", ErrResourceNotFound, kind, id)
	}

	now := s.now().UTC()
	s.record(key, models.Resource{Sys: models.Sys{
		ID:        id,
		Type:      tombstone,
		Revision:  prev.resource.Sys.Revision,
		CreatedAt: prev.resource.Sys.CreatedAt,
		UpdatedAt: &now,
		DeletedAt: &now,
	}})
	return nil
}

// Seed stores resources in order. Only entries and assets are accepted.
func (s *ContentStore) Seed(resources []models.Resource) error {
	for _, r := range resources {
		if _, err := s.Put(r); err != nil {
			return fmt.Errorf("seed %s %q: %w", r.Sys.Type, r.ID(), err)
		}
	}
	return nil
}

// Len returns the number of live resources.
func (s *ContentStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for _, c := range s.latest {
		if !c.resource.Sys.Type.IsDeletion() {
			n++
		}
	}
	return n
}

// Sync serves one page of a sync chain.
//
// An initial request snapshots the live resources matching the filter, or
// the tombstones for deletion filters. A request with a sync token either
// continues a chain or, for the token of a completed chain, returns every
// change recorded since that chain started. The filter of a token is the one
// its chain was started with.
func (s *ContentStore) Sync(req SyncRequest) (SyncResult, error) {
	if req.Initial == (req.Token != "") {
		return SyncResult{}, ErrInvalidSyncRequest
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Initial {
		return s.startChain(req.Filter, s.snapshot(req.Filter), ""), nil
	}

	cur, ok := s.cursors[req.Token]
	if !ok {
		return SyncResult{}, fmt.Errorf("%w: %q", ErrUnknownSyncToken, req.Token)
	}
	// the client holds req.Token, so the token that issued it will not be
	// retried; req.Token itself stays valid for a retry of this request
	delete(s.cursors, cur.prev)

	if cur.paging {
		return s.page(cur.filter, cur.since, cur.items, cur.offset, req.Token), nil
	}
	return s.startChain(cur.filter, s.changesSince(cur.filter, cur.since), req.Token), nil
}

func (s *ContentStore) record(key resourceKey, r models.Resource) {
	s.seq++
	s.latest[key] = change{seq: s.seq, resource: r}
}

func (s *ContentStore) startChain(filter Filter, items []models.Resource, prev string) SyncResult {
	return s.page(filter, s.seq, items, 0, prev)
}

// page serves items[offset:] and issues the token for the following request.
// upto is the sequence number the chain's data reflects.
func (s *ContentStore) page(filter Filter, upto int64, items []models.Resource, offset int, prev string) SyncResult {
	end := min(offset+s.pageSize, len(items))
	result := SyncResult{Items: items[offset:end]}

	token := s.ids.Generate()
	if end < len(items) {
		s.cursors[token] = &cursor{filter: filter, since: upto, prev: prev, items: items, offset: end, paging: true}
		result.NextPageToken = token
	} else {
		s.cursors[token] = &cursor{filter: filter, since: upto, prev: prev}
		result.NextSyncToken = token
	}
	return result
}

func (s *ContentStore) snapshot(filter Filter) []models.Resource {
	deletions := filter.selectsDeletions()
	return s.collect(func(c change) bool {
		return c.resource.Sys.Type.IsDeletion() == deletions && filter.matches(c.resource)
	})
}

func (s *ContentStore) changesSince(filter Filter, since int64) []models.Resource {
	return s.collect(func(c change) bool {
		return c.seq > since && filter.matches(c.resource)
	})
}

// collect returns the matching resources in the order they last changed.
func (s *ContentStore) collect(match func(change) bool) []models.Resource {
	selected := make([]change, 0, len(s.latest))
	for _, c := range s.latest {
		if match(c) {
			selected = append(selected, c)
		}
	}
	slices.SortFunc(selected, func(a, b change) int {
		return int(a.seq - b.seq)
	})

	items := make([]models.Resource, len(selected))
	for i, c := range selected {
		items[i] = c.resource
	}
	return items
}
