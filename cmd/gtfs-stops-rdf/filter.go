package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/config"
	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/formatter"
	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/spatial"
)

var (
	regionName  string
	boundsSpec  string
	interactive bool
	allRegions  bool
	filterFmt   string
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Extract the subgraph of stations inside a geographic rectangle",
	Long: `Build the registry graph, keep the stations whose coordinates fall inside
the chosen rectangle (edges inclusive) and export their complete fact sets
as a new graph.

The rectangle comes from a preset region (--region), four comma-separated
bounds (--bounds minLat,maxLat,minLon,maxLon), or an interactive prompt
(--interactive). Invalid numeric input falls back to the default region's
rectangle instead of failing the run. --all filters every preset region in
turn and logs the results without exporting.`,
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVar(&regionName, "region", "", "preset region name (madrid|centro|extremadura|cataluna)")
	filterCmd.Flags().StringVar(&boundsSpec, "bounds", "", "custom rectangle: minLat,maxLat,minLon,maxLon")
	filterCmd.Flags().BoolVar(&interactive, "interactive", false, "prompt for the rectangle bounds")
	filterCmd.Flags().BoolVar(&allRegions, "all", false, "filter every preset region and log the results")
	filterCmd.Flags().StringVar(&filterFmt, "format", "ttl", "output format: ttl|json")
}

func runFilter(cmd *cobra.Command, args []string) error {
	g, err := buildGraph()
	if err != nil {
		return err
	}

	if allRegions {
		for _, r := range config.Config.Regions {
			res := spatial.FilterInBounds(g, regionBounds(r))
			log.Printf("--- stations in %s ---", r.Name)
			logStations(res)
		}
		return nil
	}

	bounds, name := resolveBounds()
	res := spatial.FilterInBounds(g, bounds)
	logStations(res)

	filtered := spatial.BuildFilteredGraph(g, bounds)

	if filterFmt == "json" {
		fmt.Println(string(formatter.JSONTriples(filtered)))
		return nil
	}

	out := config.Config.Output
	if err := os.MkdirAll(out.Dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(out.Dir, "estaciones_"+name+".ttl")
	if err := os.WriteFile(path, formatter.Turtle(filtered), 0o644); err != nil {
		return err
	}
	log.Printf("filtered model saved to: %s", path)
	return nil
}

// resolveBounds picks the rectangle per flag precedence: explicit bounds,
// interactive prompt, then preset region. Bad numeric input falls back to
// the default region.
func resolveBounds() (spatial.Bounds, string) {
	if boundsSpec != "" {
		if b, err := parseBounds(boundsSpec); err == nil {
			return b, "personalizada"
		}
		log.Printf("invalid --bounds %q, using default region %s", boundsSpec, config.Config.DefaultRegion)
		r := config.SelectRegion(config.Config.DefaultRegion)
		return regionBounds(r), r.Name
	}
	if interactive {
		if b, err := promptBounds(bufio.NewReader(os.Stdin)); err == nil {
			return b, "personalizada"
		}
		log.Printf("invalid input, using default region %s", config.Config.DefaultRegion)
		r := config.SelectRegion(config.Config.DefaultRegion)
		return regionBounds(r), r.Name
	}
	r := config.SelectRegion(regionName)
	return regionBounds(r), r.Name
}

func regionBounds(r config.Region) spatial.Bounds {
	return spatial.Bounds{MinLat: r.MinLat, MaxLat: r.MaxLat, MinLon: r.MinLon, MaxLon: r.MaxLon}
}

func parseBounds(arg string) (spatial.Bounds, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 4 {
		return spatial.Bounds{}, fmt.Errorf("want 4 bounds, got %d", len(parts))
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return spatial.Bounds{}, err
		}
		vals[i] = v
	}
	return spatial.Bounds{MinLat: vals[0], MaxLat: vals[1], MinLon: vals[2], MaxLon: vals[3]}, nil
}

func promptBounds(r *bufio.Reader) (spatial.Bounds, error) {
	prompts := []string{"Minimum latitude: ", "Maximum latitude: ", "Minimum longitude: ", "Maximum longitude: "}
	vals := make([]float64, 4)
	for i, p := range prompts {
		fmt.Print(p)
		line, err := r.ReadString('\n')
		if err != nil {
			return spatial.Bounds{}, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			return spatial.Bounds{}, err
		}
		vals[i] = v
	}
	return spatial.Bounds{MinLat: vals[0], MaxLat: vals[1], MinLon: vals[2], MaxLon: vals[3]}, nil
}

func logStations(res spatial.FilterResult) {
	if len(res.Stations) == 0 {
		log.Print("no stations found in the specified area")
		return
	}
	for i, st := range res.Stations {
		log.Printf("%d. %s", i+1, st)
	}
}
