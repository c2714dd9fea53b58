package rdf

// Namespaces used by the stop registry graph. These must match the IRIs
// existing file consumers expect; do not re-abbreviate or version them.
const (
	// EXNS is the base IRI for station entity instances.
	EXNS = "http://www.ejemplo.com/"

	// GeoNS is the W3C WGS84 vocabulary for geo-positioned things.
	GeoNS = "http://www.w3.org/2003/01/geo/wgs84_pos#"

	RDFNS  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNS = "http://www.w3.org/2000/01/rdf-schema#"
	XSDNS  = "http://www.w3.org/2001/XMLSchema#"
)

// Reserved predicates and the spatial-entity marker.
const (
	TypePredicate  = RDFNS + "type"
	LabelPredicate = RDFSNS + "label"

	GeoLat       = GeoNS + "lat"
	GeoLong      = GeoNS + "long"
	SpatialThing = GeoNS + "SpatialThing"

	XSDDecimal = XSDNS + "decimal"
)

// SpanishLang is the language tag carried by station labels.
const SpanishLang = "es"

// DefaultPrefixes returns the prefix map a fresh registry graph starts with.
func DefaultPrefixes() map[string]string {
	return map[string]string{
		"ex":   EXNS,
		"geo":  GeoNS,
		"rdf":  RDFNS,
		"rdfs": RDFSNS,
		"xsd":  XSDNS,
	}
}
