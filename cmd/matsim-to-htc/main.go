package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/interscity/matsim-to-htc/config"
	"github.com/interscity/matsim-to-htc/converter"
	"github.com/interscity/matsim-to-htc/formatter"
	"github.com/interscity/matsim-to-htc/internal"
	"github.com/interscity/matsim-to-htc/manifest"
	"github.com/interscity/matsim-to-htc/matsim"
	"github.com/interscity/matsim-to-htc/splitter"
)

func main() {
	network := flag.String("network", "", "Path to network.xml file (required)")
	plans := flag.String("plans", "", "Path to plans.xml or trips.xml file (required)")
	configPath := flag.String("config", "", "Optional yaml configuration file; flags override it")

	scenarioName := flag.String("scenario-name", "", "Scenario name for organization and configuration")
	startRealTime := flag.String("start-real-time", "", "ISO 8601 timestamp for simulation start (default: now in UTC)")
	duration := flag.Int("duration", 0, "Simulation duration in time units (default 86400)")
	timeUnit := flag.String("time-unit", "", "Simulation time unit (default seconds)")
	timeStep := flag.Int("time-step", 0, "Simulation time step (default 1)")
	startTick := flag.Int("start-tick", -1, "Simulation starting tick (default 0)")

	outputDir := flag.String("output-dir", "", "Base directory to save the generated files")
	maxNodes := flag.Int("max-nodes-per-file", 0, "Maximum number of nodes per JSON file (default 1000)")
	maxLinks := flag.Int("max-links-per-file", 0, "Maximum number of links per JSON file (default 1000)")
	maxTrips := flag.Int("max-trips-per-file", 0, "Maximum number of trips (cars) per JSON file (default 1000)")
	useGzip := flag.Bool("gzip", false, "Save data files (.json.gz) compressed")
	pretty := flag.Bool("pretty", true, "Save formatted (indented) JSON")
	geoJSON := flag.Bool("geojson", false, "Also write a network.geojson preview of the parsed network")
	verbose := flag.Bool("v", false, "Increase log level to DEBUG")
	flag.Parse()

	internal.InitLogging(*verbose)
	log.Printf("starting conversion run %s", uuid.NewString())

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}
	applyFlagOverrides(&cfg, flag.CommandLine, overrides{
		scenarioName: *scenarioName,
		startReal:    *startRealTime,
		duration:     *duration,
		timeUnit:     *timeUnit,
		timeStep:     *timeStep,
		startTick:    *startTick,
		outputDir:    *outputDir,
		maxNodes:     *maxNodes,
		maxLinks:     *maxLinks,
		maxTrips:     *maxTrips,
		gzip:         *useGzip,
		pretty:       *pretty,
		geoJSON:      *geoJSON,
	})
	if err := config.Validate(cfg); err != nil {
		fatal(err)
	}

	if *network == "" || *plans == "" {
		log.Printf("both -network and -plans are required")
		flag.Usage()
		os.Exit(2)
	}

	if cfg.Scenario.StartRealTime == "" {
		cfg.Scenario.StartRealTime = config.NowStartRealTime()
	}
	normalized, err := config.NormalizeStartRealTime(cfg.Scenario.StartRealTime)
	if err != nil {
		fatal(err)
	}
	cfg.Scenario.StartRealTime = normalized
	log.Printf("using StartRealTime %s", normalized)

	scenarioDir := filepath.Join(cfg.Output.Dir, cfg.Scenario.Name)
	if err := os.MkdirAll(scenarioDir, 0o755); err != nil {
		fatal(err)
	}

	net, err := matsim.ParseNetwork(*network)
	if err != nil {
		fatal(err)
	}
	trips, err := matsim.ParsePlans(*plans)
	if err != nil {
		fatal(err)
	}
	if len(net.Nodes) == 0 {
		log.Printf("no nodes found in network file")
	}
	if len(net.Links) == 0 {
		log.Printf("no links found in network file")
	}
	if len(trips) == 0 {
		log.Printf("no car trips found in plans file")
	}

	log.Printf("mapping raw data to actors and assigning resource ids")
	conv := converter.NewConverter(cfg.Split)
	result, err := conv.Convert(net, trips)
	if err != nil {
		fatal(err)
	}

	log.Printf("splitting actors into files and saving")
	nodeFiles := splitter.SplitAndSave(result.Nodes, "nodes", scenarioDir, cfg.Output.Pretty, cfg.Output.Gzip)
	linkFiles := splitter.SplitAndSave(result.Links, "links", scenarioDir, cfg.Output.Pretty, cfg.Output.Gzip)
	carFiles := splitter.SplitAndSave(result.Cars, "cars", scenarioDir, cfg.Output.Pretty, cfg.Output.Gzip)

	simCfg := manifest.Generate(manifest.Params{
		ScenarioName:  cfg.Scenario.Name,
		StartRealTime: cfg.Scenario.StartRealTime,
		Duration:      cfg.Scenario.Duration,
		TimeUnit:      cfg.Scenario.TimeUnit,
		TimeStep:      cfg.Scenario.TimeStep,
		StartTick:     cfg.Scenario.StartTick,
	}, nodeFiles, linkFiles, carFiles)
	if err := manifest.Save(simCfg, scenarioDir, cfg.Output.Pretty, cfg.Output.Gzip); err != nil {
		fatal(err)
	}

	if cfg.Output.GeoJSON {
		warns := converter.NewWarningAggregator()
		fc := converter.BuildNetworkGeoJSON(net, warns)
		warns.LogAll("geojson")
		data, err := formatter.Marshal(fc, cfg.Output.Pretty)
		if err != nil {
			fatal(err)
		}
		previewPath := filepath.Join(scenarioDir, "network.geojson")
		if err := os.WriteFile(previewPath, data, 0o644); err != nil {
			fatal(err)
		}
		log.Printf("network preview saved at %s", previewPath)
	}

	log.Printf("conversion completed successfully for scenario %q, files at %s", cfg.Scenario.Name, scenarioDir)
}

type overrides struct {
	scenarioName string
	startReal    string
	duration     int
	timeUnit     string
	timeStep     int
	startTick    int
	outputDir    string
	maxNodes     int
	maxLinks     int
	maxTrips     int
	gzip         bool
	pretty       bool
	geoJSON      bool
}

// applyFlagOverrides layers explicitly set flags over the loaded config.
// flag.Visit only reports flags present on the command line, so config
// file values survive unless the user overrides them.
func applyFlagOverrides(cfg *config.AppConfig, fs *flag.FlagSet, o overrides) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scenario-name":
			cfg.Scenario.Name = o.scenarioName
		case "start-real-time":
			cfg.Scenario.StartRealTime = o.startReal
		case "duration":
			cfg.Scenario.Duration = o.duration
		case "time-unit":
			cfg.Scenario.TimeUnit = o.timeUnit
		case "time-step":
			cfg.Scenario.TimeStep = o.timeStep
		case "start-tick":
			cfg.Scenario.StartTick = o.startTick
		case "output-dir":
			cfg.Output.Dir = o.outputDir
		case "max-nodes-per-file":
			cfg.Split.MaxNodesPerFile = o.maxNodes
		case "max-links-per-file":
			cfg.Split.MaxLinksPerFile = o.maxLinks
		case "max-trips-per-file":
			cfg.Split.MaxTripsPerFile = o.maxTrips
		case "gzip":
			cfg.Output.Gzip = o.gzip
		case "pretty":
			cfg.Output.Pretty = o.pretty
		case "geojson":
			cfg.Output.GeoJSON = o.geoJSON
		}
	})
}

func fatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}
