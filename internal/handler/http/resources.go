package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-content-mirror/internal/logger"
	"github.com/MKhiriev/go-content-mirror/internal/utils"
	"github.com/MKhiriev/go-content-mirror/models"
)

// resourceRequest is the body of PUT /entries/{id} and PUT /assets/{id}.
type resourceRequest struct {
	ContentType string          `json:"contentType,omitempty"`
	Fields      json.RawMessage `json:"fields"`
}

func (h *Handler) putEntry(w http.ResponseWriter, r *http.Request) {
	h.putResource(w, r, models.KindEntry)
}

func (h *Handler) putAsset(w http.ResponseWriter, r *http.Request) {
	h.putResource(w, r, models.KindAsset)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	h.deleteResource(w, r, models.KindEntry)
}

func (h *Handler) deleteAsset(w http.ResponseWriter, r *http.Request) {
	h.deleteResource(w, r, models.KindAsset)
}

func (h *Handler) putResource(w http.ResponseWriter, r *http.Request, kind models.ResourceKind) {
	log := logger.FromRequest(r)

	var body resourceRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.putResource").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resource := models.Resource{
		Sys:    models.Sys{ID: chi.URLParam(r, "resourceID"), Type: kind},
		Fields: body.Fields,
	}
	if body.ContentType != "" {
		resource.Sys.ContentType = &models.Link{}
		resource.Sys.ContentType.Sys.ID = body.ContentType
	}

	stored, err := h.content.Put(resource)
	if err != nil {
		log.Err(err).Str("func", "*Handler.putResource").Msg("error storing resource")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Info().Str("id", stored.ID()).Str("type", string(kind)).Int64("revision", stored.Sys.Revision).Msg("resource stored")
	utils.WriteJSON(w, stored, http.StatusOK)
}

func (h *Handler) deleteResource(w http.ResponseWriter, r *http.Request, kind models.ResourceKind) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "resourceID")

	if err := h.content.Delete(kind, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteResource").Msg("error deleting resource")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Info().Str("id", id).Str("type", string(kind)).Msg("resource deleted")
	w.WriteHeader(http.StatusNoContent)
}
