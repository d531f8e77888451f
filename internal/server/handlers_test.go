package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/woozymasta/geofence/internal/config"
	"github.com/woozymasta/geofence/internal/geo"
	"github.com/woozymasta/geofence/internal/processor"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) *ServerContext {
	t.Helper()

	cfg := &config.Config{Areas: []config.Area{
		{Name: "warehouse", Aliases: []string{"wh"}, Polygon: geo.Ring{{100, 0}, {100, 70}, {0, 70}, {0, 0}, {100, 0}}},
		{Name: "corner", Polygon: geo.Ring{{80, 0}, {100, 0}, {100, 20}, {80, 20}, {80, 0}}},
	}}

	return NewServerContext(cfg, processor.ResolveAreas(http.DefaultClient, cfg, ""))
}

func newTestHandler(s *ServerContext) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/areas", s.HandleAreasList)
	mux.HandleFunc("/api/areas/", s.HandleArea)
	mux.HandleFunc("/api/contains", s.HandleContains)
	mux.HandleFunc("/api/extent", s.HandleExtent)
	return RequestLogger(mux)
}

func serve(h http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleAreasList(t *testing.T) {
	h := newTestHandler(newTestContext(t))

	rec := serve(h, http.MethodGet, "/api/areas", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get("Content-Type"))

	var fc geo.FeatureCollection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, "corner", fc.Features[0].Properties["name"])

	poly, err := fc.Features[1].Polygon()
	require.NoError(t, err)
	assert.Len(t, poly.Ring(), 5)
}

func TestHandleArea(t *testing.T) {
	h := newTestHandler(newTestContext(t))

	rec := serve(h, http.MethodGet, "/api/areas/wh", "")
	require.Equal(t, http.StatusOK, rec.Code)

	f, err := geo.DecodeFeature(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, geo.PolygonType, f.Geometry.Type)
	assert.Equal(t, "warehouse", f.Properties["name"])

	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/api/areas/nowhere", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/api/areas/", "").Code)
}

func TestHandleContains(t *testing.T) {
	h := newTestHandler(newTestContext(t))

	cases := []struct {
		query string
		areas []string
	}{
		{"lng=90&lat=10", []string{"corner", "warehouse"}},
		{"lng=35&lat=67", []string{"warehouse"}},
		{"lng=-35&lat=-67", []string{}},
	}

	for _, tc := range cases {
		rec := serve(h, http.MethodGet, "/api/contains?"+tc.query, "")
		require.Equal(t, http.StatusOK, rec.Code, tc.query)

		var resp struct {
			Point geo.Feature `json:"point"`
			Areas []string    `json:"areas"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, tc.areas, resp.Areas, tc.query)
		assert.Equal(t, geo.PointType, resp.Point.Geometry.Type)
	}
}

func TestHandleContainsBadInput(t *testing.T) {
	h := newTestHandler(newTestContext(t))

	rec := serve(h, http.MethodGet, "/api/contains?lng=abc&lat=1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h, http.MethodGet, "/api/contains?lng=10&lat=100", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "valid numbers")

	rec = serve(h, http.MethodPost, "/api/contains?lng=10&lat=10", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleExtent(t *testing.T) {
	h := newTestHandler(newTestContext(t))

	rec := serve(h, http.MethodPost, "/api/extent", `{"points":[[-74,40],[-78,42],[-82,35]]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"extent":[-82,35,-74,42]}`, rec.Body.String())

	rec = serve(h, http.MethodPost, "/api/extent", `{"points":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h, http.MethodPost, "/api/extent", `{"points":[[0,0],[200,0]]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, []geo.Position{{200, 0}}, errResp.Invalid)

	rec = serve(h, http.MethodPost, "/api/extent", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h, http.MethodGet, "/api/extent", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRequestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	h := newTestHandler(newTestContext(t))
	buf.Reset()

	serve(h, http.MethodGet, "/api/areas/nowhere", "")
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"status":404`)

	buf.Reset()
	serve(h, http.MethodGet, "/api/areas", "")
	assert.Contains(t, buf.String(), `"level":"info"`)
	assert.Contains(t, buf.String(), `"path":"/api/areas"`)
}
