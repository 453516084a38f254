package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-content-mirror/internal/logger"
)

// withEnvironment rejects requests for a space or environment other than the
// configured one. An empty configured space accepts any space id.
func (h *Handler) withEnvironment(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spaceID := chi.URLParam(r, "spaceID")
		environmentID := chi.URLParam(r, "environmentID")

		if (h.cfg.SpaceID != "" && spaceID != h.cfg.SpaceID) || environmentID != h.cfg.Environment {
			logger.FromRequest(r).Warn().
				Str("space", spaceID).
				Str("environment", environmentID).
				Msg("unknown space or environment")
			http.Error(w, errUnknownEnvironment.Error(), statusFromError(errUnknownEnvironment))
			return
		}

		next.ServeHTTP(w, r)
	})
}
