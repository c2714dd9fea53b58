package rdf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotDecimal is returned by NewDecimalLiteral for text that does not
// parse as a decimal number.
var ErrNotDecimal = errors.New("not a decimal value")

// Object is the object position of a Fact: either a resource reference or a
// literal. Exactly one of IRI / literal content is set. The zero Object is
// not valid; use the constructors. Object is comparable so the
// (predicate, object) index can key on it directly.
type Object struct {
	IRI      string // resource reference, empty for literals
	Value    string // literal lexical form
	Lang     string // language tag, optional
	Datatype string // datatype IRI, optional
}

// NewResource returns an Object referencing another subject by IRI.
func NewResource(iri string) Object {
	return Object{IRI: iri}
}

// NewLiteral returns a plain string literal.
func NewLiteral(value string) Object {
	return Object{Value: value}
}

// NewLangLiteral returns a language-tagged string literal.
func NewLangLiteral(value, lang string) Object {
	return Object{Value: value, Lang: lang}
}

// NewTypedLiteral returns a literal tagged with a datatype IRI.
func NewTypedLiteral(value, datatype string) Object {
	return Object{Value: value, Datatype: datatype}
}

// NewDecimalLiteral returns an xsd:decimal literal for the given lexical
// form. The text is validated but stored as-is, so "40.50" round-trips
// unchanged through serialization.
func NewDecimalLiteral(text string) (Object, error) {
	if _, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err != nil {
		return Object{}, fmt.Errorf("%w: %q", ErrNotDecimal, text)
	}
	return NewTypedLiteral(text, XSDDecimal), nil
}

// IsResource reports whether the object references a resource rather than a
// literal.
func (o Object) IsResource() bool { return o.IRI != "" }

// Float returns the literal value parsed as a float64.
func (o Object) Float() (float64, error) {
	return strconv.ParseFloat(o.Value, 64)
}

// String renders the object for logging and samples: the IRI for resources,
// the lexical form with its @lang or ^^datatype suffix for literals.
func (o Object) String() string {
	if o.IsResource() {
		return o.IRI
	}
	switch {
	case o.Lang != "":
		return o.Value + "@" + o.Lang
	case o.Datatype != "":
		return o.Value + "^^" + o.Datatype
	default:
		return o.Value
	}
}

// Fact is one (subject, predicate, object) assertion. Facts are immutable
// once appended to a Graph.
type Fact struct {
	Subject   string
	Predicate string
	Object    Object
}

func (f Fact) String() string {
	return f.Subject + " " + f.Predicate + " " + f.Object.String()
}
