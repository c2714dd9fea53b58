package spatial_test

import (
	"testing"

	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/rdf"
	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/spatial"
)

var madrid = spatial.Bounds{MinLat: 40.0, MaxLat: 41.0, MinLon: -4.0, MaxLon: -3.0}

func TestFilterInBounds(t *testing.T) {
	g := rdf.NewGraph()
	addStation(t, g, "ST1", "Atocha", "40.5", "-3.7")
	addStation(t, g, "ST2", "Remote", "10.0", "10.0")

	res := spatial.FilterInBounds(g, madrid)
	if res.Examined != 2 {
		t.Errorf("Examined = %d, want 2", res.Examined)
	}
	if res.Retained != 1 || len(res.Stations) != 1 {
		t.Fatalf("Retained = %d (%d stations), want 1", res.Retained, len(res.Stations))
	}
	st := res.Stations[0]
	if st.Subject != rdf.EXNS+"ST1" || st.Name != "Atocha" || st.Lat != 40.5 || st.Lon != -3.7 {
		t.Errorf("retained station = %+v", st)
	}
}

func TestFilterInBounds_BrokenSubjectCountsAsExamined(t *testing.T) {
	g := rdf.NewGraph()
	addStation(t, g, "ST1", "Atocha", "40.5", "-3.7")
	addStation(t, g, "BROKEN", "Sin coordenadas", "", "")

	res := spatial.FilterInBounds(g, madrid)
	if res.Examined != 2 {
		t.Errorf("Examined = %d, want 2 (broken subject still examined)", res.Examined)
	}
	if res.Retained != 1 {
		t.Errorf("Retained = %d, want 1", res.Retained)
	}
}

func TestFilterInBounds_BoundaryStationRetained(t *testing.T) {
	g := rdf.NewGraph()
	addStation(t, g, "EDGE", "Frontera", "40.0", "-4.0")

	res := spatial.FilterInBounds(g, madrid)
	if res.Retained != 1 {
		t.Errorf("station on the rectangle corner excluded: %+v", res)
	}
}

func TestBuildFilteredGraph_Closure(t *testing.T) {
	g := rdf.NewGraph()
	inSubject := addStation(t, g, "ST1", "Atocha", "40.5", "-3.7")
	outSubject := addStation(t, g, "ST2", "Remote", "10.0", "10.0")
	// ancillary fact outside the reserved vocabulary must travel with ST1
	g.Append(rdf.Fact{
		Subject:   inSubject,
		Predicate: "http://www.ejemplo.com/zone",
		Object:    rdf.NewLiteral("A"),
	})

	filtered := spatial.BuildFilteredGraph(g, madrid)

	if got, want := len(filtered.FactsFor(inSubject)), len(g.FactsFor(inSubject)); got != want {
		t.Errorf("retained subject lost facts: filtered %d, original %d", got, want)
	}
	if got := filtered.FactsFor(outSubject); len(got) != 0 {
		t.Errorf("excluded subject leaked %d facts into the filtered graph", len(got))
	}
	if filtered.Size() != len(g.FactsFor(inSubject)) {
		t.Errorf("filtered graph has %d facts, want %d", filtered.Size(), len(g.FactsFor(inSubject)))
	}

	// fact order within the subject is preserved
	orig := g.FactsFor(inSubject)
	for i, f := range filtered.FactsFor(inSubject) {
		if f != orig[i] {
			t.Fatalf("fact %d reordered: got %v, want %v", i, f, orig[i])
		}
	}
}

func TestBuildFilteredGraph_CopiesPrefixes(t *testing.T) {
	g := rdf.NewGraph()
	g.SetPrefix("zone", "http://www.ejemplo.com/zone#")
	addStation(t, g, "ST1", "Atocha", "40.5", "-3.7")

	filtered := spatial.BuildFilteredGraph(g, madrid)
	pm := filtered.PrefixMap()
	if pm["geo"] != rdf.GeoNS || pm["zone"] != "http://www.ejemplo.com/zone#" {
		t.Errorf("prefix map not copied: %v", pm)
	}
}

func TestBuildFilteredGraph_Idempotent(t *testing.T) {
	g := rdf.NewGraph()
	addStation(t, g, "ST1", "Atocha", "40.5", "-3.7")
	addStation(t, g, "ST2", "Remote", "10.0", "10.0")
	addStation(t, g, "ST3", "Sol", "40.41", "-3.70")

	once := spatial.BuildFilteredGraph(g, madrid)
	twice := spatial.BuildFilteredGraph(once, madrid)

	first := spatial.FilterInBounds(once, madrid)
	second := spatial.FilterInBounds(twice, madrid)
	if len(first.Stations) != len(second.Stations) {
		t.Fatalf("refiltering changed station count: %d vs %d", len(first.Stations), len(second.Stations))
	}
	for i := range first.Stations {
		if first.Stations[i] != second.Stations[i] {
			t.Errorf("station %d differs after refiltering: %+v vs %+v", i, first.Stations[i], second.Stations[i])
		}
	}
	if once.Size() != twice.Size() {
		t.Errorf("refiltering changed fact count: %d vs %d", once.Size(), twice.Size())
	}
}

func TestFilterInBounds_EmptyGraph(t *testing.T) {
	res := spatial.FilterInBounds(rdf.NewGraph(), madrid)
	if res.Examined != 0 || res.Retained != 0 || len(res.Stations) != 0 {
		t.Errorf("filtering an empty graph produced %+v", res)
	}
}
