package gtfsrdf_test

import (
	"strings"
	"testing"

	lib "github.com/theoremus-urban-solutions/gtfs-stops-rdf"
	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/rdf"
)

const stopsHeader = "stop_id,stop_code,stop_name,stop_desc,stop_lat,stop_lon,zone_id,stop_url,location_type,parent_station,stop_timezone,wheelchair_boarding"

func TestIngestStops(t *testing.T) {
	input := strings.Join([]string{
		stopsHeader,
		"ST1,,Atocha,,40.5,-3.7,,,,,,",
		"",
		"ST2,,Remote,,10.0,10.0,,,,,,",
		"ST3,,Goya,40.42", // malformed: four fields
		"ST4,,Sol,,40.41,-3.70,,,,,,",
	}, "\n")

	g := rdf.NewGraph()
	stats, err := lib.IngestStops(g, strings.NewReader(input), 0)
	if err != nil {
		t.Fatalf("IngestStops() err = %v", err)
	}

	if stats.Lines != 5 {
		t.Errorf("Lines = %d, want 5", stats.Lines)
	}
	if stats.Processed != 3 {
		t.Errorf("Processed = %d, want 3", stats.Processed)
	}
	if g.Size() != 12 {
		t.Errorf("graph Size() = %d, want 12 (4 facts per valid record)", g.Size())
	}
	// the malformed row appended nothing
	if got := g.FactsFor(lib.StationSubject("ST3")); len(got) != 0 {
		t.Errorf("malformed row appended %d facts", len(got))
	}
}

func TestIngestStops_BadRowDoesNotStopBatch(t *testing.T) {
	input := strings.Join([]string{
		stopsHeader,
		"ST1,,Atocha,,norte,-3.7,,,,,,", // invalid coordinate
		"ST2,,Sol,,40.41,-3.70,,,,,,",
	}, "\n")

	g := rdf.NewGraph()
	stats, err := lib.IngestStops(g, strings.NewReader(input), 0)
	if err != nil {
		t.Fatalf("IngestStops() err = %v", err)
	}
	if stats.Processed != 1 {
		t.Errorf("Processed = %d, want 1", stats.Processed)
	}
	if got := g.FactsFor(lib.StationSubject("ST2")); len(got) != 4 {
		t.Errorf("row after the failure not ingested: %d facts", len(got))
	}
}

func TestIngestStops_Limit(t *testing.T) {
	input := strings.Join([]string{
		stopsHeader,
		"ST1,,Atocha,,40.5,-3.7,,,,,,",
		"ST2,,Sol,,40.41,-3.70,,,,,,",
		"ST3,,Goya,,40.42,-3.67,,,,,,",
	}, "\n")

	g := rdf.NewGraph()
	stats, err := lib.IngestStops(g, strings.NewReader(input), 2)
	if err != nil {
		t.Fatalf("IngestStops() err = %v", err)
	}
	if stats.Lines != 2 || stats.Processed != 2 {
		t.Errorf("stats = %+v, want 2 lines and 2 processed", stats)
	}
	if got := g.FactsFor(lib.StationSubject("ST3")); len(got) != 0 {
		t.Errorf("record beyond the cap was ingested")
	}
}

func TestIngestStops_HeaderOnly(t *testing.T) {
	g := rdf.NewGraph()
	stats, err := lib.IngestStops(g, strings.NewReader(stopsHeader), 0)
	if err != nil {
		t.Fatalf("IngestStops() err = %v", err)
	}
	if stats.Lines != 0 || stats.Processed != 0 || g.Size() != 0 {
		t.Errorf("header-only input produced %+v, graph size %d", stats, g.Size())
	}
}

func TestStats(t *testing.T) {
	input := strings.Join([]string{
		stopsHeader,
		"ST1,,Atocha,,40.5,-3.7,,,,,,",
		"ST2,,Sol,,40.41,-3.70,,,,,,",
	}, "\n")

	g := rdf.NewGraph()
	if _, err := lib.IngestStops(g, strings.NewReader(input), 0); err != nil {
		t.Fatal(err)
	}

	s := lib.Stats(g)
	if s.Triples != 8 {
		t.Errorf("Triples = %d, want 8", s.Triples)
	}
	if s.Stations != 2 {
		t.Errorf("Stations = %d, want 2", s.Stations)
	}
}

func TestSample(t *testing.T) {
	g := rdf.NewGraph()
	if _, err := lib.IngestStops(g, strings.NewReader(stopsHeader+"\nST1,,Atocha,,40.5,-3.7,,,,,,"), 0); err != nil {
		t.Fatal(err)
	}

	lines := lib.Sample(g, 2)
	if len(lines) != 2 {
		t.Fatalf("Sample(2) returned %d lines", len(lines))
	}
	want := lib.StationSubject("ST1") + " " + rdf.TypePredicate + " " + rdf.SpatialThing
	if lines[0] != want {
		t.Errorf("first sample line = %q, want %q", lines[0], want)
	}

	if got := lib.Sample(g, 100); len(got) != g.Size() {
		t.Errorf("Sample(100) returned %d lines, want all %d", len(got), g.Size())
	}
}
