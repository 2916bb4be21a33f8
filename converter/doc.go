// Package converter turns flat MATSim records into HTC actor documents.
// It resolves cross references (link endpoints, trip origin/destination),
// assigns each actor to a bounded-size resource shard and keeps the strict
// nodes-then-links-then-cars ordering the dependency chain requires.
package converter
