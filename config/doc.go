// Package config holds the run configuration: scenario parameters, shard
// size bounds and output options, loadable from a yaml file with command
// line flags layered on top.
package config
