package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/scottyhq/earthaccess/internal/granuleops"
)

func printJSONLabel(label string, v interface{}) {
	fmt.Println("--------------------------------------------------")
	fmt.Println(">>>", label)
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("json marshal failed: %v", err)
	}
	fmt.Println(string(out))
	fmt.Println()
}

func main() {
	// -----------------------
	// 1) Decode a retrieved search response
	// -----------------------
	records, err := granuleops.RecordsFromJSON([]byte(sampleSearchResponse))
	if err != nil {
		log.Fatalf("decode failed: %v", err)
	}
	fmt.Printf("decoded %d records\n\n", len(records))

	// -----------------------
	// 2) Available metadata fields
	// -----------------------
	printJSONLabel("METADATA FIELDS (normalized column names)", granuleops.ListMetadataFields(records))

	// -----------------------
	// 3) Assemble with default fields
	// -----------------------
	tbl, err := granuleops.ResultsToGeoTable(records, nil)
	if err != nil {
		log.Fatalf("assemble failed: %v", err)
	}
	printJSONLabel("GEOTABLE (default fields, CRS "+tbl.CRS+")", tbl)

	// -----------------------
	// 4) Assemble with an extra requested field (defaults always included)
	// -----------------------
	withUR, err := granuleops.ResultsToGeoTable(records, []string{"_granule_ur"})
	if err != nil {
		log.Fatalf("assemble with fields failed: %v", err)
	}
	printJSONLabel("GEOTABLE COLUMNS (requested _granule_ur + defaults)", withUR.Columns)

	// -----------------------
	// 5) Sort chronologically, geometries riding along
	// -----------------------
	sorted, err := granuleops.SortByField(tbl, granuleops.SortOptions{
		Mode:  granuleops.SortDate,
		Order: granuleops.OrderAsc,
		Key:   "_beginning_date_time",
	})
	if err != nil {
		log.Fatalf("sort failed: %v", err)
	}
	printJSONLabel("SORTED (_beginning_date_time asc)", sorted.Rows)

	// -----------------------
	// 6) Merge two assembled batches
	// -----------------------
	merged, err := granuleops.MergeTables(tbl, sorted)
	if err != nil {
		log.Fatalf("merge failed: %v", err)
	}
	fmt.Printf("merged dataset: %d rows, %d geometries\n\n", len(merged.Rows), len(merged.Geometries))

	// -----------------------
	// 7) GeoJSON export
	// -----------------------
	gj, err := granuleops.ToGeoJSON(tbl)
	if err != nil {
		log.Fatalf("geojson export failed: %v", err)
	}
	fmt.Println("--------------------------------------------------")
	fmt.Println(">>> GEOJSON FEATURECOLLECTION")
	fmt.Println(string(gj))

	fmt.Println("Done.")
}
