package rdf

type predObj struct {
	pred string
	obj  Object
}

// Graph is the append-only fact store. See the package documentation for
// the index and ordering contract.
type Graph struct {
	facts     []Fact
	bySubject map[string][]int    // subject -> positions in facts, insertion order
	byPredObj map[predObj]subjSet // (predicate, object) -> asserting subjects
	prefixes  map[string]string   // short prefix -> namespace IRI
}

// subjSet keeps membership plus first-assertion order, so SubjectsWith
// enumerates deterministically.
type subjSet struct {
	seen  map[string]struct{}
	order []string
}

// NewGraph returns an empty graph with the registry's default prefix map.
func NewGraph() *Graph {
	g := newBareGraph()
	for p, ns := range DefaultPrefixes() {
		g.prefixes[p] = ns
	}
	return g
}

// NewEmptyGraph returns an empty graph with no prefixes; derived graphs use
// it and copy the source prefix map explicitly.
func NewEmptyGraph() *Graph {
	return newBareGraph()
}

func newBareGraph() *Graph {
	return &Graph{
		bySubject: map[string][]int{},
		byPredObj: map[predObj]subjSet{},
		prefixes:  map[string]string{},
	}
}

// Append adds one fact to the log and both indexes. Duplicates are retained;
// Append never fails.
func (g *Graph) Append(f Fact) {
	pos := len(g.facts)
	g.facts = append(g.facts, f)
	g.bySubject[f.Subject] = append(g.bySubject[f.Subject], pos)

	key := predObj{pred: f.Predicate, obj: f.Object}
	set, ok := g.byPredObj[key]
	if !ok {
		set = subjSet{seen: map[string]struct{}{}}
	}
	if _, dup := set.seen[f.Subject]; !dup {
		set.seen[f.Subject] = struct{}{}
		set.order = append(set.order, f.Subject)
	}
	g.byPredObj[key] = set
}

// FactsFor returns the facts with the given subject in insertion order. An
// unknown subject yields an empty slice, not an error.
func (g *Graph) FactsFor(subject string) []Fact {
	positions := g.bySubject[subject]
	out := make([]Fact, 0, len(positions))
	for _, pos := range positions {
		out = append(out, g.facts[pos])
	}
	return out
}

// SubjectsWith returns the subjects asserting the exact (predicate, object)
// pair, in the order the first assertion for each subject was appended.
func (g *Graph) SubjectsWith(predicate string, object Object) []string {
	set := g.byPredObj[predObj{pred: predicate, obj: object}]
	out := make([]string, len(set.order))
	copy(out, set.order)
	return out
}

// FirstFact returns the first fact for (subject, predicate) in insertion
// order, matching single-valued property reads over the fact log.
func (g *Graph) FirstFact(subject, predicate string) (Fact, bool) {
	for _, pos := range g.bySubject[subject] {
		if f := g.facts[pos]; f.Predicate == predicate {
			return f, true
		}
	}
	return Fact{}, false
}

// Size returns the total fact count, duplicates included.
func (g *Graph) Size() int { return len(g.facts) }

// AllFacts returns every fact in insertion order. Serializers and sample
// printers rely on this ordering.
func (g *Graph) AllFacts() []Fact {
	out := make([]Fact, len(g.facts))
	copy(out, g.facts)
	return out
}

// SetPrefix registers a namespace abbreviation for serializers.
func (g *Graph) SetPrefix(prefix, ns string) {
	g.prefixes[prefix] = ns
}

// PrefixMap returns a copy of the prefix map.
func (g *Graph) PrefixMap() map[string]string {
	out := make(map[string]string, len(g.prefixes))
	for p, ns := range g.prefixes {
		out[p] = ns
	}
	return out
}

// CopyPrefixes replaces g's prefix map with a copy of src's. Filtered graphs
// call it so encoders can abbreviate them the same way as the original.
func (g *Graph) CopyPrefixes(src *Graph) {
	g.prefixes = src.PrefixMap()
}
