package formatter

import (
	"strings"

	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/rdf"
)

// Turtle serializes the graph to Turtle: a @prefix block followed by one
// triple statement per fact, grouped by subject in insertion order.
func Turtle(g *rdf.Graph) []byte {
	t := newPrefixTable(g)
	var b strings.Builder

	for _, p := range t.prefixes {
		b.WriteString("@prefix ")
		b.WriteString(p)
		b.WriteString(": <")
		b.WriteString(t.ns[p])
		b.WriteString("> .\n")
	}
	if len(t.prefixes) > 0 {
		b.WriteString("\n")
	}

	for _, subject := range subjectsInOrder(g) {
		for _, f := range g.FactsFor(subject) {
			writeTerm(&b, t, f.Subject)
			b.WriteString(" ")
			writeTerm(&b, t, f.Predicate)
			b.WriteString(" ")
			writeObject(&b, t, f.Object)
			b.WriteString(" .\n")
		}
	}
	return []byte(b.String())
}

func writeTerm(b *strings.Builder, t *prefixTable, iri string) {
	if prefix, local, ok := t.abbrev(iri); ok {
		b.WriteString(prefix)
		b.WriteString(":")
		b.WriteString(local)
		return
	}
	b.WriteString("<")
	b.WriteString(iri)
	b.WriteString(">")
}

func writeObject(b *strings.Builder, t *prefixTable, o rdf.Object) {
	if o.IsResource() {
		writeTerm(b, t, o.IRI)
		return
	}
	b.WriteString("\"")
	b.WriteString(turtleEscape(o.Value))
	b.WriteString("\"")
	switch {
	case o.Lang != "":
		b.WriteString("@")
		b.WriteString(o.Lang)
	case o.Datatype != "":
		b.WriteString("^^")
		writeTerm(b, t, o.Datatype)
	}
}

func turtleEscape(s string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		"\"", "\\\"",
		"\n", "\\n",
		"\r", "\\r",
		"\t", "\\t",
	)
	return replacer.Replace(s)
}
