package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-content-mirror/internal/fixture"
)

var errorStatusMap = map[error]int{
	fixture.ErrInvalidSyncRequest: http.StatusBadRequest,
	fixture.ErrUnknownSyncToken:   http.StatusBadRequest,
	fixture.ErrInvalidFilter:      http.StatusBadRequest,
	fixture.ErrInvalidResource:    http.StatusUnprocessableEntity,
	fixture.ErrResourceNotFound:   http.StatusNotFound,

	errUnknownEnvironment: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
