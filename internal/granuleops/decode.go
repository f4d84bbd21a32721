package granuleops

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/scottyhq/earthaccess/internal/types"
)

// RecordsFromJSON decodes an already-retrieved catalog search response body
// into records. Both the search response envelope ({"hits": ..., "items":
// [...]}) and a bare JSON array of records are accepted. No fetching, no
// validation of record contents: the records come back exactly as shaped by
// the catalog.
func RecordsFromJSON(data []byte) ([]types.Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("search response is not valid JSON")
	}
	root := gjson.ParseBytes(data)

	items := root
	if root.IsObject() {
		items = root.Get("items")
		if !items.Exists() {
			return nil, errors.New("search response has no 'items' array")
		}
	}
	if !items.IsArray() {
		return nil, errors.New("search response items are not an array")
	}

	records := make([]types.Record, 0, 16)
	var badIndex = -1
	items.ForEach(func(_, item gjson.Result) bool {
		m, ok := item.Value().(map[string]any)
		if !ok {
			badIndex = len(records)
			return false
		}
		records = append(records, types.Record(m))
		return true
	})
	if badIndex >= 0 {
		return nil, fmt.Errorf("search response item %d is not an object", badIndex)
	}
	return records, nil
}
