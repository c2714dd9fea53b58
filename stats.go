package gtfsrdf

import (
	"log"

	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/rdf"
)

// GraphStats summarizes a registry graph.
type GraphStats struct {
	Triples  int
	Stations int
}

// Stats counts the facts in g and the subjects typed as spatial things.
func Stats(g *rdf.Graph) GraphStats {
	return GraphStats{
		Triples:  g.Size(),
		Stations: len(g.SubjectsWith(rdf.TypePredicate, rdf.NewResource(rdf.SpatialThing))),
	}
}

// LogStats writes the model statistics to the log.
func LogStats(g *rdf.Graph) {
	s := Stats(g)
	log.Printf("model statistics: %d triples, %d stations", s.Triples, s.Stations)
}

// Sample returns the first n facts rendered "subject predicate object",
// in insertion order.
func Sample(g *rdf.Graph, n int) []string {
	facts := g.AllFacts()
	if n < len(facts) {
		facts = facts[:n]
	}
	out := make([]string, len(facts))
	for i, f := range facts {
		out[i] = f.String()
	}
	return out
}

// LogSample writes the first n facts to the log.
func LogSample(g *rdf.Graph, n int) {
	log.Printf("model sample (first %d triples):", n)
	for _, line := range Sample(g, n) {
		log.Print(line)
	}
}
