package formatter

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/rdf"
)

type jsonObject struct {
	IRI      string `json:"iri,omitempty"`
	Value    string `json:"value,omitempty"`
	Lang     string `json:"lang,omitempty"`
	Datatype string `json:"datatype,omitempty"`
}

type jsonTriple struct {
	Subject   string     `json:"subject"`
	Predicate string     `json:"predicate"`
	Object    jsonObject `json:"object"`
}

// JSONTriples serializes the graph as an ordered JSON array of triples,
// used by the CLI debug path.
func JSONTriples(g *rdf.Graph) []byte {
	facts := g.AllFacts()
	out := make([]jsonTriple, len(facts))
	for i, f := range facts {
		out[i] = jsonTriple{
			Subject:   f.Subject,
			Predicate: f.Predicate,
			Object: jsonObject{
				IRI:      f.Object.IRI,
				Value:    f.Object.Value,
				Lang:     f.Object.Lang,
				Datatype: f.Object.Datatype,
			},
		}
	}
	b, _ := json.Marshal(out)
	return b
}
