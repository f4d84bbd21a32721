package granuleops

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"

	"github.com/scottyhq/earthaccess/internal/types"
	"github.com/scottyhq/earthaccess/internal/utils"
)

// --- Sort modes / options ---

type SortMode string
type SortOrder string

const (
	SortAlpha   SortMode = "alphabetical"
	SortNumeric SortMode = "numeric"
	SortDate    SortMode = "date"

	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

type SortOptions struct {
	Mode            SortMode  `json:"mode"`             // alphabetical | numeric | date
	Order           SortOrder `json:"order"`            // asc | desc
	Key             string    `json:"key"`              // column name, e.g. "_beginning_date_time"
	CaseInsensitive bool      `json:"case_insensitive"` // for alphabetical mode
	DateFormat      string    `json:"date_format"`      // optional explicit Go layout
}

// parseDate attempts common layouts or the explicit layout if provided.
func parseDate(s string, explicitLayout string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	layouts := []string{}
	if explicitLayout != "" {
		layouts = append(layouts, explicitLayout)
	}
	layouts = append(layouts,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	)
	for _, L := range layouts {
		if t, err := time.Parse(L, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortByField orders dataset rows by a column, carrying each row's geometry
// with it so the row/geometry pairing survives the permutation. Rows whose
// cell is missing or unparseable for the chosen mode sort last regardless of
// order. The input dataset is not modified.
func SortByField(tbl types.GeoTable, opts SortOptions) (types.GeoTable, error) {
	if opts.Mode == "" {
		opts.Mode = SortAlpha
	}
	if opts.Order == "" {
		opts.Order = OrderAsc
	}
	if opts.Order != OrderAsc && opts.Order != OrderDesc {
		return types.GeoTable{}, fmt.Errorf("invalid sort order: %s", opts.Order)
	}
	if opts.Mode != SortAlpha && opts.Mode != SortNumeric && opts.Mode != SortDate {
		return types.GeoTable{}, fmt.Errorf("invalid sort mode: %s", opts.Mode)
	}
	if utils.ColumnIndex(tbl.Columns, opts.Key) < 0 {
		return types.GeoTable{}, fmt.Errorf("column '%s' not found in dataset", opts.Key)
	}
	if len(tbl.Geometries) != len(tbl.Rows) {
		return types.GeoTable{}, fmt.Errorf("geometry count %d does not match row count %d", len(tbl.Geometries), len(tbl.Rows))
	}

	// Precompute one comparable key per row; ok=false sorts last.
	type sortKey struct {
		str  string
		num  float64
		when time.Time
		ok   bool
	}
	keys := make([]sortKey, len(tbl.Rows))
	for i, row := range tbl.Rows {
		v, present := row[opts.Key]
		if !present || v == nil {
			continue
		}
		switch opts.Mode {
		case SortAlpha:
			s := fmt.Sprintf("%v", v)
			if opts.CaseInsensitive {
				s = strings.ToLower(s)
			}
			keys[i] = sortKey{str: s, ok: true}
		case SortNumeric:
			if f, ok := utils.AsFloat(v); ok {
				keys[i] = sortKey{num: f, ok: true}
			} else if s, ok := v.(string); ok {
				if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
					keys[i] = sortKey{num: f, ok: true}
				}
			}
		case SortDate:
			if s, ok := v.(string); ok {
				if t, ok := parseDate(s, opts.DateFormat); ok {
					keys[i] = sortKey{when: t, ok: true}
				}
			}
		}
	}

	idx := make([]int, len(tbl.Rows))
	for i := range idx {
		idx[i] = i
	}
	desc := opts.Order == OrderDesc
	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := keys[idx[a]], keys[idx[b]]
		if ka.ok != kb.ok {
			return ka.ok // unparseable values go to the end
		}
		if !ka.ok {
			return false
		}
		var less bool
		switch opts.Mode {
		case SortNumeric:
			if ka.num == kb.num {
				return false
			}
			less = ka.num < kb.num
		case SortDate:
			if ka.when.Equal(kb.when) {
				return false
			}
			less = ka.when.Before(kb.when)
		default:
			if ka.str == kb.str {
				return false
			}
			less = ka.str < kb.str
		}
		if desc {
			return !less
		}
		return less
	})

	rows := make([]types.Row, len(idx))
	geoms := make([]orb.Geometry, len(idx))
	for out, in := range idx {
		rows[out] = utils.CloneRow(tbl.Rows[in])
		geoms[out] = tbl.Geometries[in]
	}
	return types.GeoTable{
		Columns:    append([]string(nil), tbl.Columns...),
		Rows:       rows,
		Geometries: geoms,
		CRS:        tbl.CRS,
	}, nil
}
