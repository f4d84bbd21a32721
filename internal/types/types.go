package types

import "github.com/paulmach/orb"

// Shared types used across granuleops, export, etc.

// CRSWGS84 is the coordinate reference system every assembled dataset is
// tagged with: geographic longitude/latitude on WGS84.
const CRSWGS84 = "EPSG:4326"

// Record is one catalog search result: a nested metadata document with a
// "umm" sub-mapping holding the provider metadata. Records are externally
// owned and treated as read-only everywhere in this module.
type Record map[string]any

// Row is one flattened record, keyed by normalized column name.
// Values may be scalars or lists carried over from the record as-is.
type Row map[string]any

// FlatTable is a flattened record set: one Row per input record, in input
// order. Columns lists the known column names in deterministic order; a row
// simply lacks the key for columns it has no value for.
type FlatTable struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// GeoTable is the assembled output dataset: the filtered flat table plus one
// geometry per row. Geometries[i] belongs to Rows[i], which was produced from
// the i-th input record; a nil geometry means none could be extracted.
type GeoTable struct {
	Columns    []string       `json:"columns"`
	Rows       []Row          `json:"rows"`
	Geometries []orb.Geometry `json:"geometries"`
	CRS        string         `json:"crs"`
}
