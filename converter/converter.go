package converter

import (
	"log"

	"github.com/interscity/matsim-to-htc/config"
	"github.com/interscity/matsim-to-htc/htc"
	"github.com/interscity/matsim-to-htc/matsim"
)

// Converter coordinates mapping and resource assignment for one run.
type Converter struct {
	Split config.SplitConfig
}

// NewConverter creates a converter with the given shard size bounds.
func NewConverter(split config.SplitConfig) *Converter {
	return &Converter{Split: split}
}

// Result holds the fully mapped and sharded actor sets of one run.
type Result struct {
	Nodes []*htc.NodeActor
	Links []*htc.LinkActor
	Cars  []*htc.CarActor
}

// Convert maps the parsed network and trips into actor records and assigns
// every record to a resource shard. Nodes are mapped and sharded first
// because links embed node resource ids; links complete before cars for
// the same reason. Mapping output depends only on the inputs.
func (c *Converter) Convert(net *matsim.Network, trips []matsim.RawTrip) (*Result, error) {
	res := &Result{}

	// Nodes: map, then shard, then stamp the assigned resource ids.
	nodeByID := make(map[string]*htc.NodeActor, len(net.Nodes))
	nodeIDs := make([]string, 0, len(net.Nodes))
	for _, rn := range net.Nodes {
		actor := MapNode(rn)
		res.Nodes = append(res.Nodes, actor)
		nodeIDs = append(nodeIDs, actor.ID)
	}
	nodeAssignments, _, err := AssignResourceIDs(nodeIDs, c.Split.MaxNodesPerFile, htc.NodeResourcePrefix)
	if err != nil {
		return nil, err
	}
	for i, a := range nodeAssignments {
		res.Nodes[i].ResourceID = a.ResourceID
		nodeByID[htc.OriginalID(res.Nodes[i].ID)] = res.Nodes[i]
	}
	log.Printf("resource ids assigned to %d nodes", len(res.Nodes))

	// Links: shard ids are pre-assigned from the raw ids so each link can
	// be built in one pass with its own resource id already known.
	linkIDs := make([]string, 0, len(net.Links))
	for _, rl := range net.Links {
		linkIDs = append(linkIDs, htc.ActorID(htc.LinkActorPrefix, rl.ID))
	}
	_, linkResources, err := AssignResourceIDs(linkIDs, c.Split.MaxLinksPerFile, htc.LinkResourcePrefix)
	if err != nil {
		return nil, err
	}
	linkWarns := NewWarningAggregator()
	linkByID := make(map[string]*htc.LinkActor, len(net.Links))
	for i, rl := range net.Links {
		resourceID, ok := linkResources[rl.ID]
		if !ok {
			log.Printf("internal failure: link %s did not receive a resource id", rl.ID)
			continue
		}
		actor := MapLink(rl, net.Globals, nodeByID, linkIDs[i], resourceID, linkWarns)
		res.Links = append(res.Links, actor)
		linkByID[rl.ID] = actor
	}
	linkWarns.LogAll("link")
	log.Printf("resource ids assigned and dependencies resolved for %d links", len(res.Links))

	// Cars: same pre-assignment, keyed by trip name.
	carIDs := make([]string, 0, len(trips))
	for _, rt := range trips {
		carIDs = append(carIDs, htc.ActorID(htc.CarActorPrefix, rt.Name))
	}
	_, carResources, err := AssignResourceIDs(carIDs, c.Split.MaxTripsPerFile, htc.CarResourcePrefix)
	if err != nil {
		return nil, err
	}
	carWarns := NewWarningAggregator()
	for i, rt := range trips {
		resourceID, ok := carResources[rt.Name]
		if !ok {
			log.Printf("internal failure: trip %s did not receive a resource id", rt.Name)
			continue
		}
		actor := MapCar(rt, nodeByID, linkByID, carIDs[i], resourceID, carWarns)
		res.Cars = append(res.Cars, actor)
	}
	carWarns.LogAll("car")
	log.Printf("resource ids assigned and dependencies resolved for %d cars", len(res.Cars))

	return res, nil
}
