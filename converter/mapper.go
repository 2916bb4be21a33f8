package converter

import (
	"strconv"
	"strings"

	"github.com/interscity/matsim-to-htc/htc"
	"github.com/interscity/matsim-to-htc/matsim"
)

// MapNode converts a raw node into a node actor without a resource id.
// The mapping is a pure field copy and always succeeds.
func MapNode(rn matsim.RawNode) *htc.NodeActor {
	return &htc.NodeActor{
		ID:        htc.ActorID(htc.NodeActorPrefix, rn.ID),
		Name:      "Node" + rn.ID,
		TypeActor: htc.NodeClassType,
		Data: htc.NodeData{
			DataType: htc.NodeStateType,
			Content: htc.NodeContent{
				Latitude:  rn.X,
				Longitude: rn.Y,
			},
		},
	}
}

// MapLink converts a raw link into a link actor, resolving its endpoint
// nodes in nodeByID (keyed by raw node id). An endpoint that cannot be
// resolved to a node with a resource id loses its dependency entry; when
// the node is absent entirely the content field carries a
// MISSING_NODE_<id> placeholder instead of an actor id. The link is never
// dropped.
func MapLink(
	rl matsim.RawLink,
	globals matsim.GlobalLinkAttributes,
	nodeByID map[string]*htc.NodeActor,
	actorID, resourceID string,
	warns *WarningAggregator,
) *htc.LinkActor {
	fromNode := nodeByID[rl.FromNode]
	toNode := nodeByID[rl.ToNode]

	if fromNode == nil || fromNode.ResourceID == "" {
		warns.Add(WarningMissingFromNode, rl.ID)
	}
	if toNode == nil || toNode.ResourceID == "" {
		warns.Add(WarningMissingToNode, rl.ID)
	}

	deps := htc.LinkDependencies{
		FromNode: nodeDependency(fromNode),
		ToNode:   nodeDependency(toNode),
	}

	length := parseFloatField(rl.Length, 0.0, WarningInvalidLength, rl.ID, warns)
	freeSpeed := parseFloatField(rl.FreeSpeed, 0.0, WarningInvalidFreeSpeed, rl.ID, warns)
	capacity := parseFloatField(rl.Capacity, 0.0, WarningInvalidCapacity, rl.ID, warns)
	permLanes := parseFloatField(rl.PermLanes, 1.0, WarningInvalidPermLanes, rl.ID, warns)

	content := htc.LinkContent{
		FromNode:           contentNodeRef(fromNode, rl.FromNode),
		ToNode:             contentNodeRef(toNode, rl.ToNode),
		CapPeriod:          globals.CapPeriod,
		EffectiveCellSize:  globals.EffectiveCellSize,
		EffectiveLaneWidth: globals.EffectiveLaneWidth,
		Length:             length,
		Lanes:              int(permLanes),
		FreeSpeed:          freeSpeed,
		Capacity:           capacity,
		PermLanes:          permLanes,
		Modes:              parseModes(rl.Modes),
		LinkType:           linkTypeAttribute(rl.Attributes),
	}

	return &htc.LinkActor{
		ID:           actorID,
		Name:         "Client" + rl.ID,
		TypeActor:    htc.LinkClassType,
		Data:         htc.LinkData{DataType: htc.LinkStateType, Content: content},
		Dependencies: deps,
		ResourceID:   resourceID,
	}
}

// MapCar converts a raw trip into a car actor, resolving its origin and
// destination nodes and its origin link with the same missing-reference
// policy as MapLink. The trip is never dropped.
func MapCar(
	rt matsim.RawTrip,
	nodeByID map[string]*htc.NodeActor,
	linkByID map[string]*htc.LinkActor,
	actorID, resourceID string,
	warns *WarningAggregator,
) *htc.CarActor {
	originNode := nodeByID[rt.OriginNode]
	destNode := nodeByID[rt.DestinationNode]
	originLink := linkByID[rt.LinkOrigin]

	if originNode == nil || originNode.ResourceID == "" {
		warns.Add(WarningMissingOriginNode, rt.Name)
	}
	if destNode == nil || destNode.ResourceID == "" {
		warns.Add(WarningMissingDestNode, rt.Name)
	}
	if originLink == nil {
		warns.Add(WarningMissingOriginLink, rt.Name)
	}

	startTick := 0
	if v, err := strconv.ParseFloat(rt.StartTime, 64); err == nil {
		startTick = int(v)
	} else {
		warns.Add(WarningInvalidStartTime, rt.Name)
	}

	linkOrigin := "MISSING_LINK_" + rt.LinkOrigin
	if originLink != nil {
		linkOrigin = originLink.ID
	}

	content := htc.CarContent{
		StartTick:             startTick,
		Origin:                contentNodeRef(originNode, rt.OriginNode),
		Destination:           contentNodeRef(destNode, rt.DestinationNode),
		LinkOrigin:            linkOrigin,
		GPSID:                 htc.GPSActorID,
		ScheduleOnTimeManager: true,
	}

	return &htc.CarActor{
		ID: actorID,
		// The runtime's output convention names a car after its origin
		// node, not the trip. Downstream consumers key on this.
		Name:      "Node" + rt.OriginNode,
		TypeActor: htc.CarClassType,
		Data:      htc.CarData{DataType: htc.CarStateType, Content: content},
		Dependencies: htc.CarDependencies{
			FromNode: nodeDependency(originNode),
			ToNode:   nodeDependency(destNode),
			GPS:      htc.GPSDependency(),
		},
		ResourceID: resourceID,
	}
}

// nodeDependency builds a dependency descriptor for a resolved node, or
// nil when the node is absent or not yet sharded.
func nodeDependency(node *htc.NodeActor) *htc.DependencyInfo {
	if node == nil || node.ResourceID == "" {
		return nil
	}
	return &htc.DependencyInfo{
		ID:         node.ID,
		ResourceID: node.ResourceID,
		ClassType:  htc.NodeClassType,
		ActorType:  htc.ActorTypeLoadBalanced,
	}
}

// contentNodeRef returns the node actor id for content fields, falling
// back to the documented placeholder when the node is absent.
func contentNodeRef(node *htc.NodeActor, rawID string) string {
	if node == nil {
		return "MISSING_NODE_" + rawID
	}
	return node.ID
}

func parseFloatField(raw string, fallback float64, warning, exampleID string, warns *WarningAggregator) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		warns.Add(warning, exampleID)
		return fallback
	}
	return v
}

func parseModes(raw string) []string {
	modes := []string{}
	for _, m := range strings.Split(raw, ",") {
		if m = strings.TrimSpace(m); m != "" {
			modes = append(modes, m)
		}
	}
	return modes
}

func linkTypeAttribute(attrs []matsim.RawLinkAttribute) *string {
	for _, a := range attrs {
		if a.Name == "type" {
			v := a.Value
			return &v
		}
	}
	return nil
}
