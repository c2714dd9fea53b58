package spatial

import (
	"log"

	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/rdf"
)

// FilterResult holds the stations retained by a bounds filter plus the run
// counters. Examined counts every spatial-thing subject enumerated,
// including ones whose extraction failed; Retained counts the stations
// inside the rectangle.
type FilterResult struct {
	Stations []Station
	Examined int
	Retained int
}

// FilterInBounds returns the stations whose coordinates fall inside b, in
// graph enumeration order (first type assertion wins, not geographic
// order). Subjects that fail extraction are logged, counted as examined and
// excluded.
func FilterInBounds(g *rdf.Graph, b Bounds) FilterResult {
	log.Printf("filtering stations in %s", b)

	res := FilterResult{Stations: []Station{}}
	for _, subject := range g.SubjectsWith(rdf.TypePredicate, rdf.NewResource(rdf.SpatialThing)) {
		res.Examined++
		st, err := ExtractStation(g, subject)
		if err != nil {
			log.Printf("skipping station %s: %v", subject, err)
			continue
		}
		if b.Contains(st.Lat, st.Lon) {
			res.Stations = append(res.Stations, st)
			res.Retained++
		}
	}

	log.Printf("found %d stations inside the area out of %d examined", res.Retained, res.Examined)
	return res
}

// BuildFilteredGraph extracts the closed subgraph for the stations inside b:
// a new graph holding, for each retained subject, its complete original fact
// set in original order, with the source prefix map copied over. Membership
// depends only on the coordinate facts; the copy is never partial.
func BuildFilteredGraph(g *rdf.Graph, b Bounds) *rdf.Graph {
	filtered := rdf.NewEmptyGraph()
	filtered.CopyPrefixes(g)

	for _, st := range FilterInBounds(g, b).Stations {
		for _, f := range g.FactsFor(st.Subject) {
			filtered.Append(f)
		}
	}

	log.Printf("filtered graph built with %d triples", filtered.Size())
	return filtered
}
