// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/woozymasta/geofence/internal/geo"

	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 1 << 20

// ContainsResponse lists the areas containing a point.
type ContainsResponse struct {
	Point geo.Point `json:"point"`
	Areas []string  `json:"areas"`
}

// ExtentRequest is the body of the extent endpoint.
type ExtentRequest struct {
	Points []geo.Position `json:"points"`
}

// ExtentResponse carries the computed bounding box.
type ExtentResponse struct {
	Extent geo.Extent `json:"extent"`
}

// ErrorResponse is returned with every 4xx answer.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Invalid []geo.Position `json:"invalid,omitempty"`
}

// HandleAreasList serves all areas as a GeoJSON FeatureCollection.
func (s *ServerContext) HandleAreasList(w http.ResponseWriter, r *http.Request) {
	fc := geo.NewFeatureCollection()
	for _, area := range s.Areas {
		fc.Features = append(fc.Features, area.Polygon.Feature())
	}

	writeJSON(w, http.StatusOK, "application/geo+json", fc)
}

// HandleArea serves a single area resolved by name or alias.
func (s *ServerContext) HandleArea(w http.ResponseWriter, r *http.Request) {
	// Path: /api/areas/{name}
	name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/areas/"), "/")
	if name == "" || strings.Contains(name, "/") {
		http.NotFound(w, r)
		return
	}

	area, ok := s.lookup(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	writeJSON(w, http.StatusOK, "application/geo+json", area.Polygon)
}

// HandleContains reports which areas contain the point given by the lng and lat query parameters.
func (s *ServerContext) HandleContains(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	q := r.URL.Query()
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	if errLng != nil || errLat != nil {
		writeError(w, http.StatusBadRequest, errors.New("lng and lat query parameters must be numbers"))
		return
	}

	point, err := geo.NewPoint(lng, lat, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp := ContainsResponse{Point: point, Areas: []string{}}
	for _, area := range s.Areas {
		if area.Polygon.ContainsPoint(point) {
			resp.Areas = append(resp.Areas, area.Name)
		}
	}

	log.Debug().
		Float64("lng", lng).
		Float64("lat", lat).
		Strs("areas", resp.Areas).
		Msg("Containment query")

	writeJSON(w, http.StatusOK, "application/json", resp)
}

// HandleExtent computes the bounding box of the posted positions.
func (s *ServerContext) HandleExtent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	var req ExtentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ext, err := geo.ExtentOfPositions(req.Points)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, "application/json", ExtentResponse{Extent: ext})
}

func writeJSON(w http.ResponseWriter, status int, contentType string, v any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := ErrorResponse{Error: err.Error()}

	var verr *geo.ValidationError
	if errors.As(err, &verr) {
		resp.Invalid = verr.Points
	}

	writeJSON(w, status, "application/json", resp)
}
