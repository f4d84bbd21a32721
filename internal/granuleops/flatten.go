package granuleops

import (
	"sort"

	"github.com/scottyhq/earthaccess/internal/types"
)

// FlattenRecords converts nested catalog records into a flat table, one row
// per record, in input order. Nested mappings become dotted column names
// (umm.SpatialExtent... etc.); lists and scalars are carried over as-is, so
// a RelatedUrls list survives as a single cell value.
//
// Go maps carry no key order, so column order is made deterministic: each
// record contributes its flattened keys in sorted order, and the table keeps
// the first-seen order across records. Rows share sub-values with the input
// records; records are treated as read-only throughout.
func FlattenRecords(records []types.Record) types.FlatTable {
	cols := make([]string, 0, 32)
	seen := make(map[string]struct{}, 32)
	rows := make([]types.Row, 0, len(records))

	for _, rec := range records {
		row := make(types.Row, 16)
		flattenInto(row, "", rec)

		keys := make([]string, 0, len(row))
		for k := range row {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				cols = append(cols, k)
			}
		}
		rows = append(rows, row)
	}
	return types.FlatTable{Columns: cols, Rows: rows}
}

// flattenInto walks one nesting level, extending the dotted prefix.
// Empty sub-mappings are kept as leaf values rather than vanishing.
func flattenInto(dst types.Row, prefix string, m map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok && len(sub) > 0 {
			flattenInto(dst, key, sub)
			continue
		}
		dst[key] = v
	}
}
