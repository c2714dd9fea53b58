package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/theoremus-urban-solutions/gtfs-stops-rdf/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "stops:\n  path: testdata/stops.txt\n")
	if err := config.LoadAppConfig(path); err != nil {
		t.Fatalf("LoadAppConfig() err = %v", err)
	}

	cfg := config.Config
	if cfg.Stops.Path != "testdata/stops.txt" {
		t.Errorf("Stops.Path = %q", cfg.Stops.Path)
	}
	if len(cfg.Regions) != len(config.PresetRegions) {
		t.Errorf("preset regions not applied: %d regions", len(cfg.Regions))
	}
	if cfg.DefaultRegion != "madrid" {
		t.Errorf("DefaultRegion = %q, want madrid", cfg.DefaultRegion)
	}
	if cfg.Output.Dir != "output" || cfg.Output.TurtleFile != "estaciones.ttl" || cfg.Output.RDFXMLFile != "estaciones.rdf" {
		t.Errorf("output defaults not applied: %+v", cfg.Output)
	}
}

func TestLoadAppConfig_MissingStopsPath(t *testing.T) {
	path := writeConfig(t, "stops:\n  maxRecords: 10\n")
	if err := config.LoadAppConfig(path); err == nil {
		t.Error("LoadAppConfig() accepted a config without stops.path")
	}
}

func TestLoadAppConfig_InvalidRegion(t *testing.T) {
	path := writeConfig(t, `stops:
  path: stops.txt
regions:
  - name: invertida
    minLat: 41.0
    maxLat: 40.0
    minLon: -4.0
    maxLon: -3.0
`)
	if err := config.LoadAppConfig(path); err == nil {
		t.Error("LoadAppConfig() accepted maxLat < minLat")
	}
}

func TestLoadAppConfig_FileMissing(t *testing.T) {
	if err := config.LoadAppConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("LoadAppConfig() did not report the missing file")
	}
}

func TestSelectRegion(t *testing.T) {
	path := writeConfig(t, "stops:\n  path: stops.txt\n")
	if err := config.LoadAppConfig(path); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"by name", "extremadura", "extremadura"},
		{"unknown name falls back to default", "atlantida", "madrid"},
		{"empty name falls back to default", "", "madrid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := config.SelectRegion(tt.arg); got.Name != tt.want {
				t.Errorf("SelectRegion(%q).Name = %q, want %q", tt.arg, got.Name, tt.want)
			}
		})
	}
}

func TestPresetRegions_MadridBounds(t *testing.T) {
	madrid := config.SelectRegion("madrid")
	if madrid.MinLat != 40.0 || madrid.MaxLat != 41.0 || madrid.MinLon != -4.0 || madrid.MaxLon != -3.0 {
		t.Errorf("madrid preset = %+v", madrid)
	}
}
