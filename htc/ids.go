package htc

import (
	"fmt"
	"strings"
)

// Actor and resource id prefixes. The trailing ';' is the structural
// separator: everything after the last ';' is the original source id
// (for actor ids) or the shard index (for resource ids).
const (
	NodeActorPrefix = "htcaid:node;"
	LinkActorPrefix = "htcaid:link;"
	CarActorPrefix  = "htcaid:car;"

	NodeResourcePrefix = "htcrid:node;"
	LinkResourcePrefix = "htcrid:link;"
	CarResourcePrefix  = "htcrid:car;"
)

// Runtime class types referenced by dependency descriptors and the manifest.
const (
	NodeClassType = "mobility.actor.Node"
	LinkClassType = "mobility.actor.Link"
	CarClassType  = "mobility.actor.Car"
	GPSClassType  = "mobility.actor.GPS"

	NodeStateType = "mobility.entity.state.NodeState"
	LinkStateType = "model.mobility.entity.state.LinkState"
	CarStateType  = "model.mobility.entity.state.CarState"
)

// Every car shares one GPS actor hosted on one GPS resource.
const (
	GPSActorID    = "htcaid:gps;1"
	GPSResourceID = "htcrid:gps;1"
)

// Actor distribution strategies understood by the runtime.
const (
	ActorTypeLoadBalanced = "LoadBalancedDistributed"
	ActorTypePool         = "PoolDistributed"
)

// ActorID builds a DTMI-style actor id from a prefix and the original
// source id. Separator characters in the source id are replaced so they
// cannot collide with the structural ';'.
func ActorID(prefix, originalID string) string {
	safe := strings.NewReplacer(";", "_", ":", "_").Replace(originalID)
	return prefix + safe
}

// ResourceID builds a DTMI-style resource id from a prefix and a 1-based
// shard index.
func ResourceID(prefix string, index int) string {
	return fmt.Sprintf("%s%d", prefix, index)
}

// OriginalID recovers the source id (or shard index) from a generated id
// by taking the substring after the last structural separator.
func OriginalID(id string) string {
	if i := strings.LastIndex(id, ";"); i >= 0 {
		return id[i+1:]
	}
	return id
}
