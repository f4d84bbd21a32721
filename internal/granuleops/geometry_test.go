package granuleops

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottyhq/earthaccess/internal/types"
)

// recordWithGeometry wraps a Geometry mapping in the full metadata path.
func recordWithGeometry(geo map[string]any) types.Record {
	return types.Record{
		"umm": map[string]any{
			"SpatialExtent": map[string]any{
				"HorizontalSpatialDomain": map[string]any{
					"Geometry": geo,
				},
			},
		},
	}
}

func TestExtractGeometryBoundingRectangle(t *testing.T) {
	rec := recordWithGeometry(map[string]any{
		"BoundingRectangles": []any{
			map[string]any{
				"WestBoundingCoordinate":  -10.0,
				"SouthBoundingCoordinate": 0.0,
				"EastBoundingCoordinate":  10.0,
				"NorthBoundingCoordinate": 5.0,
			},
		},
	})

	g := ExtractGeometry(rec)
	require.NotNil(t, g)
	poly, ok := g.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, poly, 1)

	// counter-clockwise, starting at (west, south), closed
	assert.Equal(t, orb.Ring{
		{-10, 0},
		{10, 0},
		{10, 5},
		{-10, 5},
		{-10, 0},
	}, poly[0])
}

func TestExtractGeometryGPolygon(t *testing.T) {
	rec := recordWithGeometry(map[string]any{
		"GPolygons": []any{
			map[string]any{
				"Boundary": map[string]any{
					"Points": []any{
						map[string]any{"Longitude": 1.0, "Latitude": 2.0},
						map[string]any{"Longitude": 3.0, "Latitude": 4.0},
						map[string]any{"Longitude": 5.0, "Latitude": 6.0},
					},
				},
			},
		},
	})

	g := ExtractGeometry(rec)
	require.NotNil(t, g)
	poly, ok := g.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, poly, 1)

	// ring is exactly the boundary points, in order; no closing point appended
	assert.Equal(t, orb.Ring{{1, 2}, {3, 4}, {5, 6}}, poly[0])
}

func TestExtractGeometryFirstRectangleWins(t *testing.T) {
	rec := recordWithGeometry(map[string]any{
		"BoundingRectangles": []any{
			map[string]any{
				"WestBoundingCoordinate":  0.0,
				"SouthBoundingCoordinate": 0.0,
				"EastBoundingCoordinate":  1.0,
				"NorthBoundingCoordinate": 1.0,
			},
			map[string]any{
				"WestBoundingCoordinate":  50.0,
				"SouthBoundingCoordinate": 50.0,
				"EastBoundingCoordinate":  60.0,
				"NorthBoundingCoordinate": 60.0,
			},
		},
	})

	poly := ExtractGeometry(rec).(orb.Polygon)
	assert.Equal(t, orb.Point{0, 0}, poly[0][0])
}

func TestExtractGeometryAbsence(t *testing.T) {
	cases := []struct {
		name string
		rec  types.Record
	}{
		{"nil record", nil},
		{"no umm", types.Record{"meta": map[string]any{}}},
		{"no spatial extent", types.Record{"umm": map[string]any{}}},
		{"neither encoding", recordWithGeometry(map[string]any{"Orbit": map[string]any{"StartLatitude": -66.0}})},
		{"empty geometry", recordWithGeometry(map[string]any{})},
		{"empty rectangle list", recordWithGeometry(map[string]any{"BoundingRectangles": []any{}})},
		{"empty polygon list", recordWithGeometry(map[string]any{"GPolygons": []any{}})},
		{"rectangle not a mapping", recordWithGeometry(map[string]any{"BoundingRectangles": []any{"oops"}})},
		{"malformed bound", recordWithGeometry(map[string]any{
			"BoundingRectangles": []any{map[string]any{
				"WestBoundingCoordinate":  "far west",
				"SouthBoundingCoordinate": 0.0,
				"EastBoundingCoordinate":  10.0,
				"NorthBoundingCoordinate": 5.0,
			}},
		})},
		{"polygon without points", recordWithGeometry(map[string]any{
			"GPolygons": []any{map[string]any{"Boundary": map[string]any{}}},
		})},
		{"malformed point", recordWithGeometry(map[string]any{
			"GPolygons": []any{map[string]any{"Boundary": map[string]any{
				"Points": []any{map[string]any{"Longitude": 1.0}},
			}}},
		})},
		{"geometry not a mapping", types.Record{
			"umm": map[string]any{
				"SpatialExtent": map[string]any{
					"HorizontalSpatialDomain": map[string]any{"Geometry": "nope"},
				},
			},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Nil(t, ExtractGeometry(c.rec))
		})
	}
}

// An unusable BoundingRectangles key must not fall through to GPolygons.
func TestExtractGeometryRectanglePrecedence(t *testing.T) {
	rec := recordWithGeometry(map[string]any{
		"BoundingRectangles": []any{},
		"GPolygons": []any{
			map[string]any{
				"Boundary": map[string]any{
					"Points": []any{
						map[string]any{"Longitude": 1.0, "Latitude": 2.0},
					},
				},
			},
		},
	})
	assert.Nil(t, ExtractGeometry(rec))
}

func TestExtractGeometryIntegerCoordinates(t *testing.T) {
	rec := recordWithGeometry(map[string]any{
		"BoundingRectangles": []any{
			map[string]any{
				"WestBoundingCoordinate":  -10,
				"SouthBoundingCoordinate": 0,
				"EastBoundingCoordinate":  10,
				"NorthBoundingCoordinate": 5,
			},
		},
	})
	require.NotNil(t, ExtractGeometry(rec))
}
