package granuleops

import (
	"strings"

	"github.com/scottyhq/earthaccess/internal/types"
)

// FlattenColumnName drops the dotted metadata prefix and rewrites CamelCase
// to lower case with underscores: umm.RelatedUrls -> _related_urls.
//
// The rule is exact: keep the last dot-separated segment, insert an
// underscore before each maximal run of ASCII uppercase letters, lower-case
// the result. Downstream field names (_beginning_date_time etc.) depend on
// this behavior byte for byte, so it is an explicit scan rather than a
// regexp. Already-normalized names pass through unchanged.
func FlattenColumnName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	var b strings.Builder
	b.Grow(len(name) + 4)
	inUpperRun := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			if !inUpperRun {
				b.WriteByte('_')
			}
			inUpperRun = true
			b.WriteByte(c - 'A' + 'a')
			continue
		}
		inUpperRun = false
		b.WriteByte(c)
	}
	return b.String()
}

// NormalizeColumns renames every column of a flattened table with
// FlattenColumnName, leaving the data untouched. Rows are rebuilt with the
// renamed keys; the input table is not modified. If two raw names normalize
// to the same column, the first one (in column order) wins.
func NormalizeColumns(tbl types.FlatTable) types.FlatTable {
	renamed := make([]string, len(tbl.Columns))
	cols := make([]string, 0, len(tbl.Columns))
	seen := make(map[string]struct{}, len(tbl.Columns))
	for i, c := range tbl.Columns {
		renamed[i] = FlattenColumnName(c)
		if _, dup := seen[renamed[i]]; !dup {
			seen[renamed[i]] = struct{}{}
			cols = append(cols, renamed[i])
		}
	}

	rows := make([]types.Row, 0, len(tbl.Rows))
	for _, r := range tbl.Rows {
		row := make(types.Row, len(r))
		for i, c := range tbl.Columns {
			v, ok := r[c]
			if !ok {
				continue
			}
			if _, taken := row[renamed[i]]; taken {
				continue
			}
			row[renamed[i]] = v
		}
		rows = append(rows, row)
	}
	return types.FlatTable{Columns: cols, Rows: rows}
}
