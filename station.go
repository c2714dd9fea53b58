package gtfsrdf

import (
	"fmt"

	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/rdf"
)

// StationSubject derives the graph subject for a stop identifier: the entity
// namespace concatenated with the raw id, no escaping or re-encoding.
func StationSubject(stopID string) string {
	return rdf.EXNS + stopID
}

// BuildStationEntity appends the facts for one validated stop record to the
// graph: the geo:SpatialThing type assertion, an @es label, and decimal
// latitude/longitude literals, all under the same subject.
//
// Both coordinate literals are constructed before anything is appended, so a
// coordinate failure leaves the graph untouched. Building the same stop id
// twice appends a second, overlapping fact set for the subject; the graph's
// multiset semantics make that legal.
func BuildStationEntity(g *rdf.Graph, rec gtfs.StopRecord) error {
	latLit, err := rdf.NewDecimalLiteral(rec.Lat)
	if err != nil {
		return fmt.Errorf("%w: stop_lat: %v", gtfs.ErrInvalidCoordinate, err)
	}
	lonLit, err := rdf.NewDecimalLiteral(rec.Lon)
	if err != nil {
		return fmt.Errorf("%w: stop_lon: %v", gtfs.ErrInvalidCoordinate, err)
	}

	subject := StationSubject(rec.ID)
	g.Append(rdf.Fact{Subject: subject, Predicate: rdf.TypePredicate, Object: rdf.NewResource(rdf.SpatialThing)})
	g.Append(rdf.Fact{Subject: subject, Predicate: rdf.LabelPredicate, Object: rdf.NewLangLiteral(rec.Name, rdf.SpanishLang)})
	g.Append(rdf.Fact{Subject: subject, Predicate: rdf.GeoLat, Object: latLit})
	g.Append(rdf.Fact{Subject: subject, Predicate: rdf.GeoLong, Object: lonLit})
	return nil
}
