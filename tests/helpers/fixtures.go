// Package helpers provides shared fixtures for integration tests.
package helpers

import (
	"strings"
	"testing"

	lib "github.com/theoremus-urban-solutions/gtfs-stops-rdf"
	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/rdf"
)

// StopsHeader is the standard GTFS stops.txt header row.
const StopsHeader = "stop_id,stop_code,stop_name,stop_desc,stop_lat,stop_lon,zone_id,stop_url,location_type,parent_station,stop_timezone,wheelchair_boarding"

// MadridStopsTable is a small stops table mixing stations inside and outside
// the Madrid rectangle plus rows that must be skipped.
func MadridStopsTable() string {
	return strings.Join([]string{
		StopsHeader,
		"ST1,,Atocha,,40.5,-3.7,,,,,,",
		"ST2,,Remote,,10.0,10.0,,,,,,",
		"ST3,,Sol,,40.4169,-3.7035,,,,,,",
		"BAD,,Goya,40.42", // malformed on purpose
		"",
		"ST4,,Badajoz,,38.88,-6.97,,,,,,",
	}, "\n")
}

// LoadStopsGraph ingests a stops table into a fresh registry graph.
func LoadStopsGraph(t *testing.T, table string) (*rdf.Graph, lib.IngestStats) {
	t.Helper()
	g := rdf.NewGraph()
	stats, err := lib.IngestStops(g, strings.NewReader(table), 0)
	if err != nil {
		t.Fatalf("ingesting fixture table: %v", err)
	}
	return g, stats
}
