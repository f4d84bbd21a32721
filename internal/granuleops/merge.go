package granuleops

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/scottyhq/earthaccess/internal/types"
	"github.com/scottyhq/earthaccess/internal/utils"
)

// MergeTables concatenates assembled datasets (for example, several search
// result pages assembled separately) into one. Columns are the union in
// first-seen order, rows and geometries are appended in input order, and all
// inputs must carry the same CRS. Inputs are copied, not aliased.
func MergeTables(tables ...types.GeoTable) (types.GeoTable, error) {
	if len(tables) == 0 {
		return types.GeoTable{CRS: types.CRSWGS84}, nil
	}

	crs := tables[0].CRS
	total := 0
	for i, t := range tables {
		if t.CRS != crs {
			return types.GeoTable{}, fmt.Errorf("cannot merge datasets with mixed CRS: '%s' vs '%s'", crs, t.CRS)
		}
		if len(t.Geometries) != len(t.Rows) {
			return types.GeoTable{}, fmt.Errorf("dataset %d: geometry count %d does not match row count %d", i, len(t.Geometries), len(t.Rows))
		}
		total += len(t.Rows)
	}

	cols := make([]string, 0, len(tables[0].Columns))
	seen := make(map[string]struct{}, len(tables[0].Columns))
	for _, t := range tables {
		for _, c := range t.Columns {
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				cols = append(cols, c)
			}
		}
	}

	rows := make([]types.Row, 0, total)
	geoms := make([]orb.Geometry, 0, total)
	for _, t := range tables {
		for _, r := range t.Rows {
			rows = append(rows, utils.CloneRow(r))
		}
		geoms = append(geoms, t.Geometries...)
	}

	return types.GeoTable{
		Columns:    cols,
		Rows:       rows,
		Geometries: geoms,
		CRS:        crs,
	}, nil
}
