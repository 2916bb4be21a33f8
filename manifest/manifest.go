// Package manifest builds the simulation.json configuration that tells
// the runtime where every resource shard lives and how to parameterize
// the run.
package manifest

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/interscity/matsim-to-htc/formatter"
	"github.com/interscity/matsim-to-htc/htc"
	"github.com/interscity/matsim-to-htc/splitter"
)

// basePath is the runtime's input mount point; data-source paths are
// resolved against it on the simulation host, not locally.
const basePath = "/app/hyperbolic-time-chamber/simulations/input"

// Params are the run parameters embedded in the configuration.
type Params struct {
	ScenarioName  string
	StartRealTime string
	Duration      int
	TimeUnit      string
	TimeStep      int
	StartTick     int
}

// Generate combines the three shard manifests with run parameters into a
// single simulation configuration, one actorsDataSources entry per shard
// file across all kinds.
func Generate(p Params, nodeFiles, linkFiles, carFiles []splitter.ShardFile) htc.SimulationConfig {
	cfg := htc.SimulationConfig{
		Name:              fmt.Sprintf("HTC-Simulator: %s", p.ScenarioName),
		Description:       "Simulates a smart mobility scenario with a map and car trips generated from MATSim data",
		StartRealTime:     p.StartRealTime,
		TimeUnit:          p.TimeUnit,
		TimeStep:          p.TimeStep,
		Duration:          p.Duration,
		StartTick:         p.StartTick,
		ActorsDataSources: []htc.ActorDataSource{},
	}

	scenarioBase := fmt.Sprintf("%s/%s", basePath, p.ScenarioName)
	appendSources(&cfg, nodeFiles, htc.NodeClassType, scenarioBase)
	appendSources(&cfg, linkFiles, htc.LinkClassType, scenarioBase)
	appendSources(&cfg, carFiles, htc.CarClassType, scenarioBase)
	return cfg
}

func appendSources(cfg *htc.SimulationConfig, files []splitter.ShardFile, classType, scenarioBase string) {
	for _, f := range files {
		cfg.ActorsDataSources = append(cfg.ActorsDataSources, htc.ActorDataSource{
			ID:        f.ResourceID,
			ClassType: classType,
			DataSource: htc.DataSource{
				SourceType: "json",
				Info:       htc.DataSourceInfo{Path: fmt.Sprintf("%s/%s", scenarioBase, f.Filename)},
			},
		})
	}
}

// Save writes simulation.json into outDir. compress is accepted for
// symmetry with the shard writers and ignored: the manifest is always
// uncompressed.
func Save(cfg htc.SimulationConfig, outDir string, pretty, _ bool) error {
	path, err := formatter.Save(cfg, filepath.Join(outDir, "simulation"), pretty, false)
	if err != nil {
		return err
	}
	log.Printf("configuration file saved at %s", path)
	return nil
}
