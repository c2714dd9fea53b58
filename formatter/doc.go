// Package formatter serializes registry graphs for file consumers.
//
// This package is organized into:
// - prefix.go: namespace abbreviation shared by the encoders
// - turtle.go: Turtle serialization (line-oriented triple statements)
// - xml.go: abbreviated RDF/XML serialization with proper escaping
// - json.go: JSON triple dump for debugging
//
// All serialization is done manually for precise control over output format;
// the encoders consume the graph's ordered fact enumeration and its prefix
// map and nothing else.
package formatter
