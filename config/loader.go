package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// PresetRegions are the rectangles shipped with the application, used when
// config.yml declares none. Madrid is the documented fallback region.
var PresetRegions = []Region{
	{Name: "madrid", MinLat: 40.0, MaxLat: 41.0, MinLon: -4.0, MaxLon: -3.0},
	{Name: "centro", MinLat: 39.0, MaxLat: 41.0, MinLon: -5.0, MaxLon: -3.0},
	{Name: "extremadura", MinLat: 38.0, MaxLat: 40.0, MinLon: -7.0, MaxLon: -5.0},
	{Name: "cataluna", MinLat: 40.0, MaxLat: 42.0, MinLon: 0.0, MaxLon: 3.0},
}

// LoadAppConfig loads and validates the application configuration. An empty
// path falls back to config.yml in the working directory.
func LoadAppConfig(path string) error {
	paths := []string{"config.yml", "./golang/config.yml"}
	if path != "" {
		paths = []string{path}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg.Stops); err != nil {
		return err
	}
	// regions are optional; if present validate each
	for _, r := range cfg.Regions {
		if err := v.Struct(r); err != nil {
			return err
		}
	}
	Config = cfg
	applyDefaults(&Config)
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if len(cfg.Regions) == 0 {
		cfg.Regions = PresetRegions
	}
	if cfg.DefaultRegion == "" {
		cfg.DefaultRegion = "madrid"
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "output"
	}
	if cfg.Output.TurtleFile == "" {
		cfg.Output.TurtleFile = "estaciones.ttl"
	}
	if cfg.Output.RDFXMLFile == "" {
		cfg.Output.RDFXMLFile = "estaciones.rdf"
	}
}

// SelectRegion chooses a region by name; fallback to the default region,
// then to the first preset.
func SelectRegion(name string) Region {
	if name != "" {
		for _, r := range Config.Regions {
			if r.Name == name {
				return r
			}
		}
	}
	if name != Config.DefaultRegion && Config.DefaultRegion != "" {
		for _, r := range Config.Regions {
			if r.Name == Config.DefaultRegion {
				return r
			}
		}
	}
	if len(Config.Regions) > 0 {
		return Config.Regions[0]
	}
	return PresetRegions[0]
}
