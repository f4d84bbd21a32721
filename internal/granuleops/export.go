package granuleops

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb/geojson"

	"github.com/scottyhq/earthaccess/internal/types"
)

// ToGeoJSON encodes an assembled dataset as a GeoJSON FeatureCollection: one
// feature per row, selected columns as properties. Rows without a geometry
// become features with a null geometry. EPSG:4326 is the GeoJSON coordinate
// system (RFC 7946), so only datasets tagged with it can be encoded.
func ToGeoJSON(tbl types.GeoTable) ([]byte, error) {
	if tbl.CRS != "" && tbl.CRS != types.CRSWGS84 {
		return nil, fmt.Errorf("cannot encode CRS '%s' as GeoJSON, expected %s", tbl.CRS, types.CRSWGS84)
	}
	if len(tbl.Geometries) != len(tbl.Rows) {
		return nil, fmt.Errorf("geometry count %d does not match row count %d", len(tbl.Geometries), len(tbl.Rows))
	}

	fc := geojson.NewFeatureCollection()
	for i, row := range tbl.Rows {
		f := &geojson.Feature{
			Type:       "Feature",
			Properties: make(geojson.Properties, len(tbl.Columns)),
		}
		if g := tbl.Geometries[i]; g != nil {
			f.Geometry = g
		}
		for _, c := range tbl.Columns {
			if v, ok := row[c]; ok {
				f.Properties[c] = v
			}
		}
		fc.Append(f)
	}
	return json.Marshal(fc)
}
