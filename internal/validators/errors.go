package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID            = errors.New("resource id is required")
	ErrInvalidKind        = errors.New("invalid resource type")
	ErrNotLiveKind        = errors.New("resource type must be Entry or Asset")
	ErrMissingContentType = errors.New("entry has no content type")
	ErrInvalidFields      = errors.New("fields are not valid JSON")
	ErrNegativeRevision   = errors.New("revision must not be negative")
	ErrNoNextURL          = errors.New("page has neither nextPageUrl nor nextSyncUrl")
	ErrBothNextURLs       = errors.New("page has both nextPageUrl and nextSyncUrl")
	ErrNoSyncToken        = errors.New("next url carries no sync_token")
)
