package validators

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-content-mirror/models"
)

// Field names accepted by [ResourceValidator].
const (
	// resource fields
	FieldID          = "id"
	FieldKind        = "type"
	FieldLiveKind    = "live_type"
	FieldContentType = "content_type"
	FieldFields      = "fields"
	FieldRevision    = "revision"

	// page fields
	FieldItems   = "items"
	FieldNextURL = "next_url"
)

type ResourceValidator struct{}

func NewResourceValidator() Validator {
	return &ResourceValidator{}
}

func (v *ResourceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Resource:
		return v.validateResource(ctx, value, fields...)
	case *models.Resource:
		return v.validateResource(ctx, *value, fields...)

	case models.SyncPage:
		return v.validatePage(ctx, value, fields...)
	case *models.SyncPage:
		return v.validatePage(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isKnownKind(kind models.ResourceKind) bool {
	switch kind {
	case models.KindEntry, models.KindAsset, models.KindDeletedEntry, models.KindDeletedAsset:
		return true
	}
	return false
}

func (v *ResourceValidator) validateResource(ctx context.Context, r models.Resource, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldKind, FieldRevision}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if r.ID() == "" {
				return ErrEmptyID
			}
		case FieldKind:
			if !isKnownKind(r.Sys.Type) {
				return fmt.Errorf("%w: %q", ErrInvalidKind, r.Sys.Type)
			}
		case FieldLiveKind:
			if r.Sys.Type != models.KindEntry && r.Sys.Type != models.KindAsset {
				return fmt.Errorf("%w: %q", ErrNotLiveKind, r.Sys.Type)
			}
		case FieldContentType:
			if r.Sys.Type == models.KindEntry && r.ContentTypeID() == "" {
				return ErrMissingContentType
			}
		case FieldFields:
			if len(r.Fields) > 0 && !json.Valid(r.Fields) {
				return ErrInvalidFields
			}
		case FieldRevision:
			if r.Sys.Revision < 0 {
				return ErrNegativeRevision
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ResourceValidator) validatePage(ctx context.Context, page models.SyncPage, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItems, FieldNextURL}
	}

	for _, f := range fields {
		switch f {
		case FieldItems:
			for i, item := range page.Items {
				if err := v.validateResource(ctx, item); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		case FieldNextURL:
			if page.NextPageURL == "" && page.NextSyncURL == "" {
				return ErrNoNextURL
			}
			if page.NextPageURL != "" && page.NextSyncURL != "" {
				return ErrBothNextURLs
			}
			if page.SyncToken() == "" {
				return ErrNoSyncToken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
