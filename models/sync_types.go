package models

import (
	"errors"
	"fmt"
	"strings"
)

// Query parameter names fixed by the sync protocol.
const (
	ParamInitial     = "initial"
	ParamSyncToken   = "sync_token"
	ParamType        = "type"
	ParamContentType = "content_type"
)

// SyncKind enumerates the resource selections a full sync can be limited to.
type SyncKind string

const (
	// SyncAll syncs every resource kind; no type-selection parameter is sent.
	SyncAll SyncKind = "all"

	// SyncEntries limits the sync to entries.
	SyncEntries SyncKind = "entries"

	// SyncAssets limits the sync to assets.
	SyncAssets SyncKind = "assets"

	// SyncEntriesOfContentType limits the sync to entries of one content type.
	// The content type id is carried in [SyncableTypes.ContentTypeID].
	SyncEntriesOfContentType SyncKind = "entries_of"

	// SyncAllDeletions limits the sync to deleted entries and deleted assets.
	SyncAllDeletions SyncKind = "deletions"

	// SyncDeletedEntries limits the sync to deleted entries.
	SyncDeletedEntries SyncKind = "deleted_entries"

	// SyncDeletedAssets limits the sync to deleted assets.
	SyncDeletedAssets SyncKind = "deleted_assets"
)

// ErrUnknownSyncKind is returned by [ParseSyncableTypes] for an unsupported kind
// or for [SyncEntriesOfContentType] without a content type id.
var ErrUnknownSyncKind = errors.New("unknown syncable types")

// SyncableTypes selects which resource kinds participate in a sync chain.
//
// The selection is only sent on the first request of a chain; once the server
// has started paginating it already fixed the scope for the remaining pages.
type SyncableTypes struct {
	Kind          SyncKind
	ContentTypeID string
}

// AllTypes is the default selection.
var AllTypes = SyncableTypes{Kind: SyncAll}

// EntriesOfContentType selects entries whose content type is contentTypeID.
func EntriesOfContentType(contentTypeID string) SyncableTypes {
	return SyncableTypes{Kind: SyncEntriesOfContentType, ContentTypeID: contentTypeID}
}

// ParseSyncableTypes turns a configuration value into a [SyncableTypes].
// An empty kind means [AllTypes].
func ParseSyncableTypes(kind, contentTypeID string) (SyncableTypes, error) {
	k := SyncKind(strings.ToLower(strings.TrimSpace(kind)))
	switch k {
	case "":
		return AllTypes, nil
	case SyncAll, SyncEntries, SyncAssets, SyncAllDeletions, SyncDeletedEntries, SyncDeletedAssets:
		return SyncableTypes{Kind: k}, nil
	case SyncEntriesOfContentType:
		contentTypeID = strings.TrimSpace(contentTypeID)
		if contentTypeID == "" {
			return SyncableTypes{}, fmt.Errorf("%w: %s requires a content type id", ErrUnknownSyncKind, k)
		}
		return EntriesOfContentType(contentTypeID), nil
	default:
		return SyncableTypes{}, fmt.Errorf("%w: %q", ErrUnknownSyncKind, kind)
	}
}

// Parameters returns the type-selection query parameters for the selection.
func (t SyncableTypes) Parameters() map[string]string {
	switch t.Kind {
	case SyncEntries:
		return map[string]string{ParamType: string(KindEntry)}
	case SyncAssets:
		return map[string]string{ParamType: string(KindAsset)}
	case SyncEntriesOfContentType:
		return map[string]string{ParamType: string(KindEntry), ParamContentType: t.ContentTypeID}
	case SyncAllDeletions:
		return map[string]string{ParamType: "Deletion"}
	case SyncDeletedEntries:
		return map[string]string{ParamType: string(KindDeletedEntry)}
	case SyncDeletedAssets:
		return map[string]string{ParamType: string(KindDeletedAsset)}
	default:
		return map[string]string{}
	}
}

func (t SyncableTypes) String() string {
	if t.Kind == SyncEntriesOfContentType {
		return string(t.Kind) + ":" + t.ContentTypeID
	}
	if t.Kind == "" {
		return string(SyncAll)
	}
	return string(t.Kind)
}
