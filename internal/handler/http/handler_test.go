// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-content-mirror/internal/config"
	"github.com/MKhiriev/go-content-mirror/internal/fixture"
	"github.com/MKhiriev/go-content-mirror/internal/logger"
	"github.com/MKhiriev/go-content-mirror/models"
)

const (
	testSpace = "space1"
	testEnv   = "master"
	testToken = "secret"
	syncPath  = "/spaces/space1/environments/master/sync"
)

func newTestFixtureHandler(t *testing.T, pageSize int, seed ...models.Resource) (*Handler, *fixture.ContentStore) {
	t.Helper()
	content := fixture.NewContentStore(pageSize)
	require.NoError(t, content.Seed(seed))

	cfg := config.FixtureConfig{SpaceID: testSpace, Environment: testEnv, AccessToken: testToken}
	return NewHandler(content, cfg, models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"), logger.Nop()), content
}

func entry(id, contentType string) models.Resource {
	r := models.Resource{Sys: models.Sys{ID: id, Type: models.KindEntry}, Fields: json.RawMessage(`{"n":1}`)}
	r.Sys.ContentType = &models.Link{}
	r.Sys.ContentType.Sys.ID = contentType
	return r
}

func doRequest(t *testing.T, router http.Handler, method, target, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	h, content := newTestFixtureHandler(t, 10)

	assert.Same(t, content, h.content)
	assert.Equal(t, testSpace, h.cfg.SpaceID)
	assert.NotNil(t, h.logger)
}

func TestInit_Version(t *testing.T) {
	h, _ := newTestFixtureHandler(t, 10)

	rr := doRequest(t, h.Init(), http.MethodGet, "/version", "", false)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3 (abc123, 2026-10-01)", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_VersionWithoutBuildInfo(t *testing.T) {
	h := NewHandler(fixture.NewContentStore(1), config.FixtureConfig{}, models.AppBuildInfo{}, logger.Nop())

	rr := doRequest(t, h.Init(), http.MethodGet, "/version", "", false)
	assert.Equal(t, "N/A (N/A, N/A)", rr.Body.String())
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestFixtureHandler(t, 10)

	rr := doRequest(t, h.Init(), http.MethodGet, "/nope", "", true)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_WrongMethodReturns405(t *testing.T) {
	h, _ := newTestFixtureHandler(t, 10)
	router := h.Init()

	rr := doRequest(t, router, http.MethodPost, syncPath, "", true)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET", rr.Header().Get("Allow"))

	rr = doRequest(t, router, http.MethodGet, "/spaces/space1/environments/master/entries/e1", "", true)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "PUT, DELETE", rr.Header().Get("Allow"))
}

func TestInit_UnknownEnvironment(t *testing.T) {
	h, _ := newTestFixtureHandler(t, 10)
	router := h.Init()

	rr := doRequest(t, router, http.MethodGet, "/spaces/other/environments/master/sync?initial=true", "", true)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(t, router, http.MethodGet, "/spaces/space1/environments/staging/sync?initial=true", "", true)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFromError(fixture.ErrUnknownSyncToken))
	assert.Equal(t, http.StatusNotFound, statusFromError(fixture.ErrResourceNotFound))
	assert.Equal(t, http.StatusUnprocessableEntity, statusFromError(fixture.ErrInvalidResource))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(io.EOF))
}
