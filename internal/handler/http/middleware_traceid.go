package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader  = "X-Trace-ID"
	maxTraceIDSize = 64
)

// withTraceID attaches a request-scoped logger carrying trace_id and echoes
// the id back in the response. An incoming id is kept if it is short and
// printable ASCII, otherwise a new one is issued.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID(traceID) {
			traceID = uuid.NewString()
		}

		reqLogger := h.logger.GetChildLogger()
		reqLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(reqLogger.WithContext(r.Context())))
	})
}

func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDSize {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}
