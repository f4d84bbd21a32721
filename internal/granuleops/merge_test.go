package granuleops

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottyhq/earthaccess/internal/types"
)

func TestMergeTables(t *testing.T) {
	first := types.GeoTable{
		Columns:    []string{"native-id", "size"},
		Rows:       []types.Row{{"native-id": "g1", "size": 1.0}},
		Geometries: []orb.Geometry{orb.Polygon{orb.Ring{{1, 1}}}},
		CRS:        types.CRSWGS84,
	}
	second := types.GeoTable{
		Columns:    []string{"native-id", "_granule_ur"},
		Rows:       []types.Row{{"native-id": "g2", "_granule_ur": "g2"}, {"native-id": "g3"}},
		Geometries: []orb.Geometry{nil, orb.Polygon{orb.Ring{{3, 3}}}},
		CRS:        types.CRSWGS84,
	}

	merged, err := MergeTables(first, second)
	require.NoError(t, err)

	// union of columns in first-seen order
	assert.Equal(t, []string{"native-id", "size", "_granule_ur"}, merged.Columns)
	require.Len(t, merged.Rows, 3)
	require.Len(t, merged.Geometries, 3)
	assert.Equal(t, "g1", merged.Rows[0]["native-id"])
	assert.Equal(t, "g3", merged.Rows[2]["native-id"])
	assert.Nil(t, merged.Geometries[1])
	assert.Equal(t, types.CRSWGS84, merged.CRS)

	// merged rows are copies, not aliases
	merged.Rows[0]["native-id"] = "changed"
	assert.Equal(t, "g1", first.Rows[0]["native-id"])
}

func TestMergeTablesEmpty(t *testing.T) {
	merged, err := MergeTables()
	require.NoError(t, err)
	assert.Empty(t, merged.Rows)
	assert.Equal(t, types.CRSWGS84, merged.CRS)
}

func TestMergeTablesCRSMismatch(t *testing.T) {
	a := types.GeoTable{CRS: types.CRSWGS84}
	b := types.GeoTable{CRS: "EPSG:3857"}
	_, err := MergeTables(a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mixed CRS")
}

func TestMergeTablesMisaligned(t *testing.T) {
	bad := types.GeoTable{
		Rows: []types.Row{{"a": 1.0}},
		CRS:  types.CRSWGS84,
	}
	_, err := MergeTables(bad)
	require.Error(t, err)
}
