package formatter

import (
	"strings"

	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/rdf"
)

// RDFXML serializes the graph to abbreviated RDF/XML: one node element per
// subject in insertion order, typed by the subject's first rdf:type fact
// when that type abbreviates under a registered prefix.
func RDFXML(g *rdf.Graph) []byte {
	t := newPrefixTable(g)
	var b strings.Builder

	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<rdf:RDF")
	for _, p := range t.prefixes {
		b.WriteString("\n    xmlns:")
		b.WriteString(p)
		b.WriteString("=\"")
		b.WriteString(xmlEscape(t.ns[p]))
		b.WriteString("\"")
	}
	b.WriteString(">\n")

	for _, subject := range subjectsInOrder(g) {
		writeNodeXML(&b, t, g, subject)
	}

	b.WriteString("</rdf:RDF>\n")
	return []byte(b.String())
}

func writeNodeXML(b *strings.Builder, t *prefixTable, g *rdf.Graph, subject string) {
	facts := g.FactsFor(subject)

	// The first abbreviatable rdf:type becomes the element name; its fact
	// is then omitted from the property list.
	elem := "rdf:Description"
	typedAt := -1
	for i, f := range facts {
		if f.Predicate != rdf.TypePredicate || !f.Object.IsResource() {
			continue
		}
		if prefix, local, ok := t.abbrev(f.Object.IRI); ok {
			elem = prefix + ":" + local
			typedAt = i
		}
		break
	}

	b.WriteString("  <")
	b.WriteString(elem)
	b.WriteString(" rdf:about=\"")
	b.WriteString(xmlEscape(subject))
	b.WriteString("\">\n")

	for i, f := range facts {
		if i == typedAt {
			continue
		}
		writePropertyXML(b, t, f)
	}

	b.WriteString("  </")
	b.WriteString(elem)
	b.WriteString(">\n")
}

func writePropertyXML(b *strings.Builder, t *prefixTable, f rdf.Fact) {
	name := "rdf:type"
	extraNS := ""
	if f.Predicate != rdf.TypePredicate {
		if prefix, local, ok := t.abbrev(f.Predicate); ok {
			name = prefix + ":" + local
		} else {
			// property outside the registered namespaces: declare one inline
			ns, local := splitIRI(f.Predicate)
			name = "p0:" + local
			extraNS = ns
		}
	}

	b.WriteString("    <")
	b.WriteString(name)
	if extraNS != "" {
		b.WriteString(" xmlns:p0=\"")
		b.WriteString(xmlEscape(extraNS))
		b.WriteString("\"")
	}

	o := f.Object
	if o.IsResource() {
		b.WriteString(" rdf:resource=\"")
		b.WriteString(xmlEscape(o.IRI))
		b.WriteString("\"/>\n")
		return
	}
	if o.Lang != "" {
		b.WriteString(" xml:lang=\"")
		b.WriteString(xmlEscape(o.Lang))
		b.WriteString("\"")
	}
	if o.Datatype != "" {
		b.WriteString(" rdf:datatype=\"")
		b.WriteString(xmlEscape(o.Datatype))
		b.WriteString("\"")
	}
	b.WriteString(">")
	b.WriteString(xmlEscape(o.Value))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">\n")
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
