package gtfsrdf

import (
	"bufio"
	"io"
	"log"
	"os"
	"strings"

	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/rdf"
)

// IngestStats reports how an ingestion run went. Lines counts data lines
// read after the header (blank lines included), Processed the records that
// made it into the graph.
type IngestStats struct {
	Lines     int
	Processed int
}

// IngestStops reads a stops table from r and appends one station entity per
// valid data line to g. The first line is the header and is discarded.
// Ingestion is best-effort: a bad line is logged with its number and content
// and the loop moves on. limit caps the number of data lines read; 0 means
// no cap.
func IngestStops(g *rdf.Graph, r io.Reader, limit int) (IngestStats, error) {
	var stats IngestStats

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return stats, scanner.Err()
	}
	log.Printf("stops header: %s", scanner.Text())

	for scanner.Scan() {
		if limit > 0 && stats.Lines >= limit {
			break
		}
		line := scanner.Text()
		stats.Lines++

		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := gtfs.ParseStopLine(line)
		if err != nil {
			log.Printf("skipping line %d: %v: %s", stats.Lines, err, line)
			continue
		}
		if err := BuildStationEntity(g, rec); err != nil {
			log.Printf("skipping line %d: %v: %s", stats.Lines, err, line)
			continue
		}
		stats.Processed++
	}
	if err := scanner.Err(); err != nil {
		return stats, err
	}

	log.Printf("stops processed: %d of %d", stats.Processed, stats.Lines)
	return stats, nil
}

// IngestStopsFile opens path and ingests it with IngestStops.
func IngestStopsFile(g *rdf.Graph, path string, limit int) (IngestStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return IngestStats{}, err
	}
	defer f.Close()
	log.Printf("processing stops file: %s", path)
	return IngestStops(g, f, limit)
}
