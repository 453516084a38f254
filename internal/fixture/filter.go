package fixture

import (
	"fmt"

	"github.com/MKhiriev/go-content-mirror/models"
)

const typeDeletion = "Deletion"

// Filter is the type selection of a sync chain, as sent in the type and
// content_type query parameters of its first request.
type Filter struct {
	Type        string
	ContentType string
}

// ParseFilter validates the type selection parameters.
func ParseFilter(typ, contentType string) (Filter, error) {
	switch typ {
	case "", "all":
		typ = ""
	case string(models.KindEntry), string(models.KindAsset),
		string(models.KindDeletedEntry), string(models.KindDeletedAsset), typeDeletion:
	default:
		return Filter{}, fmt.Errorf("%w: unknown type %q", ErrInvalidFilter, typ)
	}

	if contentType != "" && typ != string(models.KindEntry) {
		return Filter{}, fmt.Errorf("%w: content_type requires type=Entry", ErrInvalidFilter)
	}

	return Filter{Type: typ, ContentType: contentType}, nil
}

// selectsDeletions reports whether the filter asks for tombstones only.
func (f Filter) selectsDeletions() bool {
	switch f.Type {
	case typeDeletion, string(models.KindDeletedEntry), string(models.KindDeletedAsset):
		return true
	}
	return false
}

func (f Filter) matches(r models.Resource) bool {
	switch f.Type {
	case "":
		return true
	case typeDeletion:
		return r.Sys.Type.IsDeletion()
	case string(models.KindEntry):
		if r.Sys.Type != models.KindEntry {
			return false
		}
		return f.ContentType == "" || r.ContentTypeID() == f.ContentType
	default:
		return string(r.Sys.Type) == f.Type
	}
}
