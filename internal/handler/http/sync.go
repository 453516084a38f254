package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-content-mirror/internal/fixture"
	"github.com/MKhiriev/go-content-mirror/internal/logger"
	"github.com/MKhiriev/go-content-mirror/internal/utils"
	"github.com/MKhiriev/go-content-mirror/models"
)

func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	query := r.URL.Query()

	filter, err := fixture.ParseFilter(query.Get(models.ParamType), query.Get(models.ParamContentType))
	if err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("invalid type selection")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	result, err := h.content.Sync(fixture.SyncRequest{
		Initial: query.Get(models.ParamInitial) == "true",
		Token:   query.Get(models.ParamSyncToken),
		Filter:  filter,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("error serving sync page")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	page := models.SyncPage{Items: result.Items}
	if page.Items == nil {
		page.Items = []models.Resource{}
	}
	if result.NextPageToken != "" {
		page.NextPageURL = syncURL(r, result.NextPageToken)
	} else {
		page.NextSyncURL = syncURL(r, result.NextSyncToken)
	}

	log.Debug().
		Int("items", len(page.Items)).
		Bool("more_pages", page.HasMorePages()).
		Msg("sync page served")

	utils.WriteJSON(w, page, http.StatusOK)
}

// syncURL is the absolute URL of the sync endpoint carrying token.
func syncURL(r *http.Request, token string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: url.Values{models.ParamSyncToken: {token}}.Encode(),
	}
	return u.String()
}
