package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	lib "github.com/theoremus-urban-solutions/gtfs-stops-rdf"
	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "gtfs-stops-rdf",
	Short: "Materialize a GTFS stop registry as an RDF graph and filter it geographically",
	Long: `gtfs-stops-rdf ingests a GTFS stops.txt table, materializes every stop as a
geo:SpatialThing entity in an RDF graph and exports the result as Turtle and
RDF/XML. The filter command extracts the closed subgraph of stations inside
a geographic rectangle, chosen from preset regions or typed interactively.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lib.InitLogging()
		if configPath == "" {
			configPath = os.Getenv("GTFS_RDF_CONFIG")
		}
		if err := config.LoadAppConfig(configPath); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

func main() {
	_ = godotenv.Load(".env")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yml (default: ./config.yml, or $GTFS_RDF_CONFIG)")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(filterCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
