package spatial

import (
	"errors"
	"fmt"
	"log"

	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/rdf"
)

// ErrMissingCoordinate marks a spatial-thing subject that lacks a latitude
// or longitude fact at read time.
var ErrMissingCoordinate = errors.New("missing coordinate property")

// placeholderName labels stations that carry no rdfs:label fact.
const placeholderName = "Sin nombre"

// Station is the typed view of one spatial entity in the graph.
type Station struct {
	Subject string
	Name    string
	Lat     float64
	Lon     float64
}

func (s Station) String() string {
	return fmt.Sprintf("Station[%s] %s (%.4f, %.4f)", s.Subject, s.Name, s.Lat, s.Lon)
}

// ExtractStation rebuilds the typed station for one subject. The label is
// best-effort and falls back to a placeholder; a missing latitude or
// longitude fact is an error.
func ExtractStation(g *rdf.Graph, subject string) (Station, error) {
	st := Station{Subject: subject, Name: placeholderName}
	if f, ok := g.FirstFact(subject, rdf.LabelPredicate); ok {
		st.Name = f.Object.Value
	}

	latFact, ok := g.FirstFact(subject, rdf.GeoLat)
	if !ok {
		return Station{}, fmt.Errorf("%w: geo:lat", ErrMissingCoordinate)
	}
	lat, err := latFact.Object.Float()
	if err != nil {
		return Station{}, fmt.Errorf("geo:lat: %w", err)
	}
	st.Lat = lat

	lonFact, ok := g.FirstFact(subject, rdf.GeoLong)
	if !ok {
		return Station{}, fmt.Errorf("%w: geo:long", ErrMissingCoordinate)
	}
	lon, err := lonFact.Object.Float()
	if err != nil {
		return Station{}, fmt.Errorf("geo:long: %w", err)
	}
	st.Lon = lon

	return st, nil
}

// ListStations enumerates every subject marked as a spatial thing and
// extracts its typed view. Subjects that fail extraction are logged and
// skipped; enumeration always continues.
func ListStations(g *rdf.Graph) []Station {
	subjects := g.SubjectsWith(rdf.TypePredicate, rdf.NewResource(rdf.SpatialThing))
	out := make([]Station, 0, len(subjects))
	for _, subject := range subjects {
		st, err := ExtractStation(g, subject)
		if err != nil {
			log.Printf("skipping station %s: %v", subject, err)
			continue
		}
		out = append(out, st)
	}
	return out
}
