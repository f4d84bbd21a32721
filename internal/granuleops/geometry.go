package granuleops

import (
	"github.com/paulmach/orb"

	"github.com/scottyhq/earthaccess/internal/types"
	"github.com/scottyhq/earthaccess/internal/utils"
)

// ExtractGeometry reads a record's spatial metadata from
// umm.SpatialExtent.HorizontalSpatialDomain.Geometry and returns a planar
// geometry in lon/lat coordinates, or nil when none can be extracted.
//
// Geometry metadata quality varies across data providers, so every failure
// mode (missing path, wrong types, empty lists, malformed coordinates, an
// encoding this module does not understand) degrades to nil instead of an
// error: a bad record must never abort the batch.
func ExtractGeometry(rec types.Record) orb.Geometry {
	umm := utils.AsMap(rec["umm"])
	extent := utils.AsMap(umm["SpatialExtent"])
	domain := utils.AsMap(extent["HorizontalSpatialDomain"])
	geo := utils.AsMap(domain["Geometry"])
	if geo == nil {
		return nil
	}

	// BoundingRectangles takes precedence; a present-but-unusable key does
	// not fall through to GPolygons.
	if v, ok := geo["BoundingRectangles"]; ok {
		rects := utils.AsSlice(v)
		if len(rects) == 0 {
			return nil
		}
		return boundingBox(utils.AsMap(rects[0]))
	}
	if v, ok := geo["GPolygons"]; ok {
		polys := utils.AsSlice(v)
		if len(polys) == 0 {
			return nil
		}
		return boundaryPolygon(utils.AsMap(polys[0]))
	}
	// Orbit/track encodings and anything else: incompatible, no geometry.
	return nil
}

// boundingBox builds an axis-aligned box from west/south/east/north bounds,
// vertices counter-clockwise starting at (west, south), ring closed.
func boundingBox(rect map[string]any) orb.Geometry {
	west, okW := utils.AsFloat(rect["WestBoundingCoordinate"])
	south, okS := utils.AsFloat(rect["SouthBoundingCoordinate"])
	east, okE := utils.AsFloat(rect["EastBoundingCoordinate"])
	north, okN := utils.AsFloat(rect["NorthBoundingCoordinate"])
	if !okW || !okS || !okE || !okN {
		return nil
	}
	return orb.Polygon{orb.Ring{
		{west, south},
		{east, south},
		{east, north},
		{west, north},
		{west, south},
	}}
}

// boundaryPolygon builds a polygon whose ring is exactly the boundary's
// (longitude, latitude) points, in the given order. No closing point is
// appended and winding is not validated.
func boundaryPolygon(poly map[string]any) orb.Geometry {
	boundary := utils.AsMap(poly["Boundary"])
	points := utils.AsSlice(boundary["Points"])
	if len(points) == 0 {
		return nil
	}
	ring := make(orb.Ring, 0, len(points))
	for _, p := range points {
		pm := utils.AsMap(p)
		lon, okLon := utils.AsFloat(pm["Longitude"])
		lat, okLat := utils.AsFloat(pm["Latitude"])
		if !okLon || !okLat {
			return nil
		}
		ring = append(ring, orb.Point{lon, lat})
	}
	return orb.Polygon{ring}
}
