package granuleops

import "github.com/scottyhq/earthaccess/internal/types"

// ListMetadataFields returns the normalized column names available across a
// record set, useful for choosing extra fields to request from
// ResultsToGeoTable.
func ListMetadataFields(records []types.Record) []string {
	return NormalizeColumns(FlattenRecords(records)).Columns
}
