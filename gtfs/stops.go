package gtfs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse failure kinds. Callers at the ingestion loop boundary match on these
// with errors.Is; none of them aborts a batch.
var (
	ErrMalformedRecord   = errors.New("malformed record")
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

// Column positions in stops.txt.
const (
	colStopID   = 0
	colStopName = 2
	colStopLat  = 4
	colStopLon  = 5
)

const minFields = 6

// StopRecord is one validated stop row. Coordinates keep their trimmed
// lexical form; they are known to parse as decimals.
type StopRecord struct {
	ID   string
	Name string
	Lat  string
	Lon  string
}

// ParseStopLine turns one data line of stops.txt into a StopRecord.
// Blank lines are not records; the caller skips them before calling.
func ParseStopLine(line string) (StopRecord, error) {
	fields := strings.Split(line, ",")
	if len(fields) < minFields {
		return StopRecord{}, fmt.Errorf("%w: %d fields, want at least %d", ErrMalformedRecord, len(fields), minFields)
	}

	rec := StopRecord{
		ID:   strings.TrimSpace(fields[colStopID]),
		Name: strings.TrimSpace(fields[colStopName]),
		Lat:  strings.TrimSpace(fields[colStopLat]),
		Lon:  strings.TrimSpace(fields[colStopLon]),
	}
	if rec.ID == "" || rec.Name == "" || rec.Lat == "" || rec.Lon == "" {
		return StopRecord{}, ErrMissingField
	}

	if _, err := strconv.ParseFloat(rec.Lat, 64); err != nil {
		return StopRecord{}, fmt.Errorf("%w: stop_lat %q", ErrInvalidCoordinate, rec.Lat)
	}
	if _, err := strconv.ParseFloat(rec.Lon, 64); err != nil {
		return StopRecord{}, fmt.Errorf("%w: stop_lon %q", ErrInvalidCoordinate, rec.Lon)
	}
	return rec, nil
}
