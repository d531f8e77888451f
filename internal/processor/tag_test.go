package processor

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/woozymasta/geofence/internal/config"
	"github.com/woozymasta/geofence/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagPoints(t *testing.T) {
	cfg := &config.Config{Areas: []config.Area{
		{Name: "warehouse", Polygon: geo.Ring{{100, 0}, {100, 70}, {0, 70}, {0, 0}, {100, 0}}},
		{Name: "yard", Points: []geo.Position{{80, 0}, {100, 20}}},
	}}
	areas := ResolveAreas(http.DefaultClient, cfg, "")
	require.Len(t, areas, 2)

	var fc geo.FeatureCollection
	require.NoError(t, json.Unmarshal([]byte(`{
		"type": "FeatureCollection",
		"features": [
			{"type":"Feature","geometry":{"type":"Point","coordinates":[35,67]},"properties":{"name":"a"}},
			{"type":"Feature","geometry":{"type":"Point","coordinates":[-35,-67]},"properties":{"name":"b"}},
			{"type":"Feature","geometry":{"type":"Point","coordinates":["1","2"]},"properties":{"name":"c"}},
			{"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[1,1]]},"properties":{}}
		]
	}`), &fc))

	tagged, skipped := TagPoints(areas, fc)
	assert.Equal(t, 2, skipped)
	require.Len(t, tagged.Features, 2)

	assert.Equal(t, "a", tagged.Features[0].Properties["name"])
	assert.Equal(t, []string{"warehouse"}, tagged.Features[0].Properties[AreasProperty])
	assert.Equal(t, []string{}, tagged.Features[1].Properties[AreasProperty])
}
