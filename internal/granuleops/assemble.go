package granuleops

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/scottyhq/earthaccess/internal/types"
	"github.com/scottyhq/earthaccess/internal/utils"
)

// DefaultFields is the column set every assembled dataset carries. Requested
// fields are merged on top of these, never instead of them.
var DefaultFields = []string{
	"size",
	"concept_id",
	"dataset-id",
	"native-id",
	"provider-id",
	"_related_urls",
	"_single_date_time",
	"_beginning_date_time",
	"_ending_date_time",
	"geometry",
}

// relatedURLsColumn must stay selectable: the assembler fails loudly when a
// non-empty table lacks it.
const relatedURLsColumn = "_related_urls"

// relatedURLTypes is the allow-list of link categories kept in each row's
// related-urls cell.
var relatedURLTypes = map[string]struct{}{
	"GET DATA":                   {},
	"GET DATA VIA DIRECT ACCESS": {},
	"GET RELATED VISUALIZATION":  {},
}

// ResultsToGeoTable normalizes catalog records into a flat table, keeps the
// requested fields (always unioned with DefaultFields; an empty request means
// defaults alone), trims each row's related-urls list to the allow-list, and
// pairs every row with the geometry extracted from the original record at the
// same index. The result is tagged CRS EPSG:4326.
//
// Per-record geometry failures degrade silently to a nil geometry. Structural
// misuse — a non-empty table without the _related_urls column, or a
// related-urls cell that is not a link list — is returned as an error.
func ResultsToGeoTable(records []types.Record, fields []string) (types.GeoTable, error) {
	tbl := NormalizeColumns(FlattenRecords(records))

	want := make(map[string]struct{}, len(fields)+len(DefaultFields))
	for _, f := range DefaultFields {
		want[f] = struct{}{}
	}
	for _, f := range fields {
		want[f] = struct{}{}
	}

	// Drop every column outside the effective field set. Selection keeps the
	// flattened table's column order, so requested-vs-default makes no
	// ordering difference.
	cols := make([]string, 0, len(want))
	for _, c := range tbl.Columns {
		if _, ok := want[c]; ok {
			cols = append(cols, c)
		}
	}
	rows := make([]types.Row, 0, len(tbl.Rows))
	for _, r := range tbl.Rows {
		row := make(types.Row, len(cols))
		for _, c := range cols {
			if v, ok := r[c]; ok {
				row[c] = v
			}
		}
		rows = append(rows, row)
	}

	if len(rows) > 0 {
		if utils.ColumnIndex(cols, relatedURLsColumn) < 0 {
			return types.GeoTable{}, fmt.Errorf("column '%s' not found in dataset", relatedURLsColumn)
		}
		for i, row := range rows {
			filtered, err := filterRelatedLinks(row[relatedURLsColumn])
			if err != nil {
				return types.GeoTable{}, fmt.Errorf("row %d: %w", i, err)
			}
			if filtered != nil {
				row[relatedURLsColumn] = filtered
			}
		}
	}

	// Geometry comes from the original record at the same index, not from the
	// flattened row; row order matches input order, so indices line up.
	geoms := make([]orb.Geometry, len(records))
	for i := range records {
		geoms[i] = ExtractGeometry(records[i])
	}

	return types.GeoTable{
		Columns:    cols,
		Rows:       rows,
		Geometries: geoms,
		CRS:        types.CRSWGS84,
	}, nil
}

// filterRelatedLinks keeps only allow-listed link entries. A nil cell (record
// had no related urls) passes through; any other non-list value is an error.
func filterRelatedLinks(v any) ([]any, error) {
	if v == nil {
		return nil, nil
	}
	links, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("column '%s': value is not a link list", relatedURLsColumn)
	}
	out := make([]any, 0, len(links))
	for _, item := range links {
		link := utils.AsMap(item)
		if link == nil {
			return nil, fmt.Errorf("column '%s': link entry is not a mapping", relatedURLsColumn)
		}
		t, ok := link["Type"].(string)
		if !ok {
			return nil, fmt.Errorf("column '%s': link entry has no 'Type'", relatedURLsColumn)
		}
		if _, keep := relatedURLTypes[t]; keep {
			out = append(out, item)
		}
	}
	return out, nil
}
