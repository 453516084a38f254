package http

import (
	"compress/gzip"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const environmentRoute = "/spaces/{spaceID}/environments/{environmentID}"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(gzip.DefaultCompression, "application/json", "text/plain"))

	router.Get("/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route(environmentRoute, func(r chi.Router) {
			r.Use(h.withEnvironment)

			r.Get("/sync", h.sync)

			r.Put("/entries/{resourceID}", h.putEntry)
			r.Delete("/entries/{resourceID}", h.deleteEntry)
			r.Put("/assets/{resourceID}", h.putAsset)
			r.Delete("/assets/{resourceID}", h.deleteAsset)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
