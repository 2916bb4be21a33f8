// Package htc defines the wire schema consumed by the HTC actor runtime:
// actor documents for nodes, links and cars, the dependency descriptor
// embedded in dependent actors, and the simulation configuration manifest.
package htc
