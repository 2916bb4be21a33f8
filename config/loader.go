package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Default returns the configuration used when no file or flag overrides
// anything: a 24h one-second-step scenario with 1000-actor shards.
func Default() AppConfig {
	return AppConfig{
		Scenario: ScenarioConfig{
			Name:     "smart_mobility",
			Duration: 86400,
			TimeUnit: "seconds",
			TimeStep: 1,
		},
		Split: SplitConfig{
			MaxNodesPerFile: 1000,
			MaxLinksPerFile: 1000,
			MaxTripsPerFile: 1000,
		},
		Output: OutputConfig{
			Dir:    "output",
			Pretty: true,
		},
	}
}

// Load reads a yaml configuration file over the defaults. An empty path
// returns the defaults unchanged. The result is not yet validated; callers
// apply their flag overrides first and then call Validate.
func Load(path string) (AppConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config file %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config file %s", path)
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot run with, in
// particular non-positive shard sizes.
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}
