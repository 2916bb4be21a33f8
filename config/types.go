package config

// ScenarioConfig describes the simulation run being generated.
type ScenarioConfig struct {
	Name          string `yaml:"name" validate:"required"`
	StartRealTime string `yaml:"startRealTime"`
	Duration      int    `yaml:"duration" validate:"gt=0"`
	TimeUnit      string `yaml:"timeUnit" validate:"required"`
	TimeStep      int    `yaml:"timeStep" validate:"gt=0"`
	StartTick     int    `yaml:"startTick" validate:"gte=0"`
}

// SplitConfig bounds the size of each output shard. Zero or negative
// bounds are a configuration error, not an undefined shard layout.
type SplitConfig struct {
	MaxNodesPerFile int `yaml:"maxNodesPerFile" validate:"gt=0"`
	MaxLinksPerFile int `yaml:"maxLinksPerFile" validate:"gt=0"`
	MaxTripsPerFile int `yaml:"maxTripsPerFile" validate:"gt=0"`
}

// OutputConfig controls where and how files are written.
type OutputConfig struct {
	Dir     string `yaml:"dir" validate:"required"`
	Gzip    bool   `yaml:"gzip"`
	Pretty  bool   `yaml:"pretty"`
	GeoJSON bool   `yaml:"geojson"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Scenario ScenarioConfig `yaml:"scenario"`
	Split    SplitConfig    `yaml:"split"`
	Output   OutputConfig   `yaml:"output"`
}
