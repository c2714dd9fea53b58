package formatter

import (
	"sort"
	"strings"

	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/rdf"
)

// prefixTable resolves IRIs to prefixed names using a graph's prefix map.
// Lookups prefer the longest matching namespace.
type prefixTable struct {
	prefixes []string // sorted for deterministic output
	ns       map[string]string
}

func newPrefixTable(g *rdf.Graph) *prefixTable {
	ns := g.PrefixMap()
	prefixes := make([]string, 0, len(ns))
	for p := range ns {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	return &prefixTable{prefixes: prefixes, ns: ns}
}

// abbrev returns prefix and local name for an IRI, or ok=false when no
// registered namespace matches or the remainder is not a safe local name.
func (t *prefixTable) abbrev(iri string) (prefix, local string, ok bool) {
	bestLen := 0
	for _, p := range t.prefixes {
		n := t.ns[p]
		if strings.HasPrefix(iri, n) && len(n) > bestLen {
			prefix, local, bestLen = p, iri[len(n):], len(n)
		}
	}
	if bestLen == 0 || local == "" || !safeLocalName(local) {
		return "", "", false
	}
	return prefix, local, true
}

func safeLocalName(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '.':
		default:
			return false
		}
	}
	return s[len(s)-1] != '.'
}

// splitIRI separates an IRI into namespace and local name at the last '#'
// or '/', for serializing properties with no registered prefix.
func splitIRI(iri string) (ns, local string) {
	idx := strings.LastIndexAny(iri, "#/")
	if idx < 0 || idx == len(iri)-1 {
		return "", iri
	}
	return iri[:idx+1], iri[idx+1:]
}

// subjectsInOrder returns the distinct subjects of g in first-fact order.
func subjectsInOrder(g *rdf.Graph) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, f := range g.AllFacts() {
		if _, ok := seen[f.Subject]; !ok {
			seen[f.Subject] = struct{}{}
			out = append(out, f.Subject)
		}
	}
	return out
}
