// Package processor resolves configured areas into polygons and caches remote area data.
package processor

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"github.com/woozymasta/geofence/internal/config"
	"github.com/woozymasta/geofence/internal/geo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Area is a configured area resolved into its polygon.
type Area struct {
	Index   *int
	Name    string
	Aliases []string
	Polygon geo.Polygon
}

// ResolveAreas resolves every configured area. Areas that fail are logged and
// skipped. The result is ordered by index, then by name.
func ResolveAreas(client *http.Client, cfg *config.Config, cacheDir string) []Area {
	areas := make([]Area, 0, len(cfg.Areas))

	for _, a := range cfg.Areas {
		poly, err := ResolveArea(client, a, cacheDir)
		if err != nil {
			log.Error().
				Err(err).
				Str("area", a.Name).
				Str("source", a.Source()).
				Msg("Skipping area: failed to resolve polygon")
			continue
		}

		log.Debug().
			Str("area", a.Name).
			Str("source", a.Source()).
			Int("vertices", len(poly.Ring())).
			Msg("Area resolved")

		areas = append(areas, Area{
			Index:   a.Index,
			Name:    a.Name,
			Aliases: a.Aliases,
			Polygon: poly,
		})
	}

	sort.Slice(areas, func(i, j int) bool {
		idxI, idxJ := 999999, 999999
		if areas[i].Index != nil {
			idxI = *areas[i].Index
		}
		if areas[j].Index != nil {
			idxJ = *areas[j].Index
		}
		if idxI != idxJ {
			return idxI < idxJ
		}

		return areas[i].Name < areas[j].Name
	})

	return areas
}

// ResolveArea builds the polygon of a single area. Remote areas are read from
// cacheDir when a cached copy exists, otherwise downloaded with client.
func ResolveArea(client *http.Client, a config.Area, cacheDir string) (geo.Polygon, error) {
	var (
		poly geo.Polygon
		err  error
	)

	switch a.Source() {
	case "polygon":
		poly, err = geo.NewPolygon(a.Polygon, nil)

	case "points":
		points := make([]geo.Point, 0, len(a.Points))
		for _, pos := range a.Points {
			p, perr := geo.NewPoint(pos[0], pos[1], nil)
			if perr != nil {
				return geo.Polygon{}, perr
			}
			points = append(points, p)
		}
		poly, err = geo.RectFromPoints(a.Name, points)

	case "url":
		var data []byte
		data, err = readOrFetch(client, a, cacheDir)
		if err != nil {
			return geo.Polygon{}, err
		}

		var g orb.Geometry
		var props geojson.Properties
		g, props, err = parseAreaGeoJSON(data)
		if err != nil {
			return geo.Polygon{}, errors.Wrapf(err, "area %s", a.Name)
		}
		poly, err = geo.PolygonFromOrb(g, geo.Properties(props))

	default:
		return geo.Polygon{}, errors.Errorf("area %s has no shape source", a.Name)
	}

	if err != nil {
		return geo.Polygon{}, err
	}

	props := poly.Properties()
	props["name"] = a.Name
	for k, v := range a.Properties {
		props[k] = v
	}

	return poly, nil
}

// CacheArea downloads a remote area and stores it as <cacheDir>/<name>.geojson.
// Existing files are kept unless force is set.
func CacheArea(client *http.Client, a config.Area, cacheDir string, force bool) error {
	if a.URL == "" {
		return nil
	}

	destFile := cachePath(cacheDir, a.Name)
	if _, err := os.Stat(destFile); err == nil && !force {
		log.Debug().Str("area", a.Name).Msg("Area file exists, skipping")
		return nil
	}

	log.Info().
		Str("area", a.Name).
		Str("source", a.URL).
		Msg("Downloading area")

	data, err := fetch(client, a.URL)
	if err != nil {
		return err
	}

	// refuse to cache files the resolver could not use
	if _, _, err := parseAreaGeoJSON(data); err != nil {
		return errors.Wrapf(err, "area %s", a.Name)
	}

	return saveGeoJSON(cacheDir, destFile, data)
}

func cachePath(cacheDir, name string) string {
	return filepath.Join(cacheDir, name+".geojson")
}

func readOrFetch(client *http.Client, a config.Area, cacheDir string) ([]byte, error) {
	if cacheDir != "" {
		data, err := os.ReadFile(cachePath(cacheDir, a.Name))
		if err == nil {
			log.Trace().Str("area", a.Name).Msg("Using cached area file")
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "read cached area")
		}
	}

	return fetch(client, a.URL)
}

func fetch(client *http.Client, url string) ([]byte, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, errors.Wrap(err, "fetch area")
	}
	// Explicitly ignore close error as it's a read-only operation
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch area: status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// parseAreaGeoJSON returns the first polygonal geometry of a FeatureCollection,
// a Feature or a bare geometry, with its properties.
func parseAreaGeoJSON(data []byte) (orb.Geometry, geojson.Properties, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, nil, errors.Wrap(err, "decode geojson")
	}

	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, nil, errors.Wrap(err, "decode feature collection")
		}
		for _, f := range fc.Features {
			if isPolygonal(f.Geometry) {
				return f.Geometry, f.Properties, nil
			}
		}
		return nil, nil, errors.New("feature collection has no polygon")

	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, nil, errors.Wrap(err, "decode feature")
		}
		if !isPolygonal(f.Geometry) {
			return nil, nil, errors.New("feature is not a polygon")
		}
		return f.Geometry, f.Properties, nil

	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, nil, errors.Wrap(err, "decode geometry")
		}
		if !isPolygonal(g.Geometry()) {
			return nil, nil, errors.Errorf("geometry %s is not a polygon", head.Type)
		}
		return g.Geometry(), geojson.Properties{}, nil
	}
}

func isPolygonal(g orb.Geometry) bool {
	switch g.(type) {
	case orb.Polygon, orb.MultiPolygon:
		return true
	default:
		return false
	}
}

// saveGeoJSON writes the raw area document to disk.
func saveGeoJSON(dir, path string, data []byte) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
		}
	}()

	_, err = f.Write(data)
	return err
}
