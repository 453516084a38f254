package models

import (
	"encoding/json"
	"time"
)

// ResourceKind is the value of sys.type for an item in a sync page.
type ResourceKind string

const (
	KindEntry        ResourceKind = "Entry"
	KindAsset        ResourceKind = "Asset"
	KindDeletedEntry ResourceKind = "DeletedEntry"
	KindDeletedAsset ResourceKind = "DeletedAsset"
)

// IsDeletion reports whether the kind is a tombstone.
func (k ResourceKind) IsDeletion() bool {
	return k == KindDeletedEntry || k == KindDeletedAsset
}

// Link references another resource by id, e.g. an entry's content type.
type Link struct {
	Sys struct {
		ID string `json:"id"`
	} `json:"sys"`
}

// Sys holds the system metadata every resource carries.
type Sys struct {
	// ID identifies the resource inside its space. Entries and assets live in
	// separate id namespaces.
	ID string `json:"id"`

	// Type tells whether the item is a live resource or a deletion.
	Type ResourceKind `json:"type"`

	// Revision is the published revision counter.
	Revision int64 `json:"revision,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`

	// ContentType is set on entries only.
	ContentType *Link `json:"contentType,omitempty"`
}

// Resource is one item of a sync page: an entry, an asset, or a deletion.
// Fields are kept undecoded; the mirror stores them as-is.
type Resource struct {
	Sys    Sys             `json:"sys"`
	Fields json.RawMessage `json:"fields,omitempty"`
}

// ID is a shortcut for r.Sys.ID.
func (r Resource) ID() string {
	return r.Sys.ID
}

// ContentTypeID returns the entry's content type id or "".
func (r Resource) ContentTypeID() string {
	if r.Sys.ContentType == nil {
		return ""
	}
	return r.Sys.ContentType.Sys.ID
}
