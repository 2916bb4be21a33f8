package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interscity/matsim-to-htc/htc"
	"github.com/interscity/matsim-to-htc/matsim"
)

func shardedNode(id, x, y, resourceID string) *htc.NodeActor {
	actor := MapNode(matsim.RawNode{ID: id, X: x, Y: y})
	actor.ResourceID = resourceID
	return actor
}

func testGlobals() matsim.GlobalLinkAttributes {
	cp := "01:00:00"
	cell := 7.5
	lane := 3.75
	return matsim.GlobalLinkAttributes{CapPeriod: &cp, EffectiveCellSize: &cell, EffectiveLaneWidth: &lane}
}

func TestMapNode(t *testing.T) {
	actor := MapNode(matsim.RawNode{ID: "1001", X: "-46.633", Y: "-23.550"})

	assert.Equal(t, "htcaid:node;1001", actor.ID)
	assert.Equal(t, "Node1001", actor.Name)
	assert.Equal(t, htc.NodeClassType, actor.TypeActor)
	assert.Equal(t, htc.NodeStateType, actor.Data.DataType)
	assert.Equal(t, "-46.633", actor.Data.Content.Latitude)
	assert.Equal(t, "-23.550", actor.Data.Content.Longitude)
	assert.Zero(t, actor.Data.Content.StartTick)
	assert.False(t, actor.Data.Content.ScheduleOnTimeManager)
	assert.Empty(t, actor.ResourceID)
}

func TestMapLinkResolved(t *testing.T) {
	nodeByID := map[string]*htc.NodeActor{
		"1": shardedNode("1", "0", "0", "htcrid:node;1"),
		"2": shardedNode("2", "1", "1", "htcrid:node;1"),
	}
	rl := matsim.RawLink{
		ID: "L1", FromNode: "1", ToNode: "2",
		Length: "120.5", FreeSpeed: "13.9", Capacity: "2000", PermLanes: "2.7",
		OneWay: "1", Modes: " car , bus ,,pt",
		Attributes: []matsim.RawLinkAttribute{{Name: "osmid", Value: "99"}, {Name: "type", Value: "secondary"}},
	}
	warns := NewWarningAggregator()

	actor := MapLink(rl, testGlobals(), nodeByID, "htcaid:link;L1", "htcrid:link;1", warns)

	assert.Equal(t, "htcaid:link;L1", actor.ID)
	assert.Equal(t, "ClientL1", actor.Name)
	assert.Equal(t, htc.LinkClassType, actor.TypeActor)
	assert.Equal(t, htc.LinkStateType, actor.Data.DataType)
	assert.Equal(t, "htcrid:link;1", actor.ResourceID)

	content := actor.Data.Content
	assert.Equal(t, "htcaid:node;1", content.FromNode)
	assert.Equal(t, "htcaid:node;2", content.ToNode)
	assert.Equal(t, 120.5, content.Length)
	assert.Equal(t, 13.9, content.FreeSpeed)
	assert.Equal(t, 2000.0, content.Capacity)
	assert.Equal(t, 2.7, content.PermLanes)
	assert.Equal(t, 2, content.Lanes)
	assert.Equal(t, []string{"car", "bus", "pt"}, content.Modes)
	require.NotNil(t, content.LinkType)
	assert.Equal(t, "secondary", *content.LinkType)
	require.NotNil(t, content.CapPeriod)
	assert.Equal(t, "01:00:00", *content.CapPeriod)

	require.NotNil(t, actor.Dependencies.FromNode)
	assert.Equal(t, "htcaid:node;1", actor.Dependencies.FromNode.ID)
	assert.Equal(t, "htcrid:node;1", actor.Dependencies.FromNode.ResourceID)
	assert.Equal(t, htc.NodeClassType, actor.Dependencies.FromNode.ClassType)
	assert.Equal(t, htc.ActorTypeLoadBalanced, actor.Dependencies.FromNode.ActorType)
	require.NotNil(t, actor.Dependencies.ToNode)

	assert.Zero(t, warns.Count(WarningMissingFromNode))
	assert.Zero(t, warns.Count(WarningMissingToNode))
}

func TestMapLinkMissingNode(t *testing.T) {
	nodeByID := map[string]*htc.NodeActor{
		"2": shardedNode("2", "1", "1", "htcrid:node;1"),
	}
	rl := matsim.RawLink{
		ID: "L9", FromNode: "404", ToNode: "2",
		Length: "10", FreeSpeed: "5", Capacity: "100", PermLanes: "1",
		OneWay: "1", Modes: "car",
	}
	warns := NewWarningAggregator()

	actor := MapLink(rl, matsim.GlobalLinkAttributes{}, nodeByID, "htcaid:link;L9", "htcrid:link;1", warns)

	assert.Equal(t, "MISSING_NODE_404", actor.Data.Content.FromNode)
	assert.Nil(t, actor.Dependencies.FromNode)
	assert.NotNil(t, actor.Dependencies.ToNode)
	assert.Equal(t, 1, warns.Count(WarningMissingFromNode))
	assert.Nil(t, actor.Data.Content.CapPeriod)
	assert.Nil(t, actor.Data.Content.LinkType)
}

func TestMapLinkUnshardedNodeKeepsContentRef(t *testing.T) {
	// A node present in the map but without a resource id contributes its
	// actor id to content, yet gets no dependency entry.
	nodeByID := map[string]*htc.NodeActor{
		"1": MapNode(matsim.RawNode{ID: "1", X: "0", Y: "0"}),
		"2": shardedNode("2", "1", "1", "htcrid:node;1"),
	}
	rl := matsim.RawLink{
		ID: "L2", FromNode: "1", ToNode: "2",
		Length: "10", FreeSpeed: "5", Capacity: "100", PermLanes: "1",
		OneWay: "1", Modes: "car",
	}
	warns := NewWarningAggregator()

	actor := MapLink(rl, matsim.GlobalLinkAttributes{}, nodeByID, "htcaid:link;L2", "htcrid:link;1", warns)

	assert.Equal(t, "htcaid:node;1", actor.Data.Content.FromNode)
	assert.Nil(t, actor.Dependencies.FromNode)
	assert.Equal(t, 1, warns.Count(WarningMissingFromNode))
}

func TestMapLinkNumericFallbacks(t *testing.T) {
	nodeByID := map[string]*htc.NodeActor{
		"1": shardedNode("1", "0", "0", "htcrid:node;1"),
		"2": shardedNode("2", "1", "1", "htcrid:node;1"),
	}
	rl := matsim.RawLink{
		ID: "L3", FromNode: "1", ToNode: "2",
		Length: "abc", FreeSpeed: "", Capacity: "NaN-ish", PermLanes: "x",
		OneWay: "1", Modes: "car",
	}
	warns := NewWarningAggregator()

	actor := MapLink(rl, matsim.GlobalLinkAttributes{}, nodeByID, "htcaid:link;L3", "htcrid:link;1", warns)

	content := actor.Data.Content
	assert.Equal(t, 0.0, content.Length)
	assert.Equal(t, 0.0, content.FreeSpeed)
	assert.Equal(t, 0.0, content.Capacity)
	assert.Equal(t, 1.0, content.PermLanes)
	assert.Equal(t, 1, content.Lanes)
	assert.Equal(t, 1, warns.Count(WarningInvalidLength))
	assert.Equal(t, 1, warns.Count(WarningInvalidFreeSpeed))
	assert.Equal(t, 1, warns.Count(WarningInvalidCapacity))
	assert.Equal(t, 1, warns.Count(WarningInvalidPermLanes))
}

func TestMapCar(t *testing.T) {
	nodeByID := map[string]*htc.NodeActor{
		"1": shardedNode("1", "0", "0", "htcrid:node;1"),
		"2": shardedNode("2", "1", "1", "htcrid:node;2"),
	}
	linkByID := map[string]*htc.LinkActor{
		"L1": {ID: "htcaid:link;L1", ResourceID: "htcrid:link;1"},
	}
	rt := matsim.RawTrip{
		Name: "trip_1", OriginNode: "1", DestinationNode: "2",
		LinkOrigin: "L1", StartTime: "3600.9", Mode: "car",
	}
	warns := NewWarningAggregator()

	actor := MapCar(rt, nodeByID, linkByID, "htcaid:car;trip_1", "htcrid:car;1", warns)

	assert.Equal(t, "htcaid:car;trip_1", actor.ID)
	// Display name comes from the origin node, not the trip name.
	assert.Equal(t, "Node1", actor.Name)
	assert.Equal(t, htc.CarClassType, actor.TypeActor)
	assert.Equal(t, htc.CarStateType, actor.Data.DataType)
	assert.Equal(t, "htcrid:car;1", actor.ResourceID)

	content := actor.Data.Content
	assert.Equal(t, 3600, content.StartTick)
	assert.Equal(t, "htcaid:node;1", content.Origin)
	assert.Equal(t, "htcaid:node;2", content.Destination)
	assert.Equal(t, "htcaid:link;L1", content.LinkOrigin)
	assert.Equal(t, htc.GPSActorID, content.GPSID)
	assert.True(t, content.ScheduleOnTimeManager)

	require.NotNil(t, actor.Dependencies.FromNode)
	assert.Equal(t, "htcrid:node;1", actor.Dependencies.FromNode.ResourceID)
	require.NotNil(t, actor.Dependencies.ToNode)
	assert.Equal(t, "htcrid:node;2", actor.Dependencies.ToNode.ResourceID)
	require.NotNil(t, actor.Dependencies.GPS)
	assert.Equal(t, htc.GPSResourceID, actor.Dependencies.GPS.ResourceID)
	assert.Equal(t, htc.ActorTypePool, actor.Dependencies.GPS.ActorType)
}

func TestMapCarMissingReferences(t *testing.T) {
	rt := matsim.RawTrip{
		Name: "trip_x", OriginNode: "404", DestinationNode: "405",
		LinkOrigin: "L404", StartTime: "not-a-number", Mode: "car",
	}
	warns := NewWarningAggregator()

	actor := MapCar(rt, map[string]*htc.NodeActor{}, map[string]*htc.LinkActor{}, "htcaid:car;trip_x", "htcrid:car;1", warns)

	content := actor.Data.Content
	assert.Equal(t, "MISSING_NODE_404", content.Origin)
	assert.Equal(t, "MISSING_NODE_405", content.Destination)
	assert.Equal(t, "MISSING_LINK_L404", content.LinkOrigin)
	assert.Zero(t, content.StartTick)

	assert.Nil(t, actor.Dependencies.FromNode)
	assert.Nil(t, actor.Dependencies.ToNode)
	assert.NotNil(t, actor.Dependencies.GPS)

	assert.Equal(t, 1, warns.Count(WarningMissingOriginNode))
	assert.Equal(t, 1, warns.Count(WarningMissingDestNode))
	assert.Equal(t, 1, warns.Count(WarningMissingOriginLink))
	assert.Equal(t, 1, warns.Count(WarningInvalidStartTime))
}
