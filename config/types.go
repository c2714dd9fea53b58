package config

// StopsConfig locates the GTFS stops table and caps ingestion.
type StopsConfig struct {
	Path       string `yaml:"path" validate:"required"`
	MaxRecords int    `yaml:"maxRecords" validate:"gte=0"`
}

// OutputConfig names the export directory and files.
type OutputConfig struct {
	Dir        string `yaml:"dir"`
	TurtleFile string `yaml:"turtleFile"`
	RDFXMLFile string `yaml:"rdfxmlFile"`
}

// Region is a named preset rectangle for geographic filtering.
type Region struct {
	Name   string  `yaml:"name" validate:"required"`
	MinLat float64 `yaml:"minLat"`
	MaxLat float64 `yaml:"maxLat" validate:"gtefield=MinLat"`
	MinLon float64 `yaml:"minLon"`
	MaxLon float64 `yaml:"maxLon" validate:"gtefield=MinLon"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Stops         StopsConfig  `yaml:"stops" validate:"required"`
	Output        OutputConfig `yaml:"output"`
	Regions       []Region     `yaml:"regions"`
	DefaultRegion string       `yaml:"defaultRegion"`
}
