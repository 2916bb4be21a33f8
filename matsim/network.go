package matsim

import (
	"encoding/xml"
	"log"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

type xmlNetwork struct {
	Nodes *struct {
		Nodes []xmlNode `xml:"node"`
	} `xml:"nodes"`
	Links *xmlLinks `xml:"links"`
}

type xmlNode struct {
	ID string `xml:"id,attr"`
	X  string `xml:"x,attr"`
	Y  string `xml:"y,attr"`
}

type xmlLinks struct {
	CapPeriod          string    `xml:"capperiod,attr"`
	EffectiveCellSize  string    `xml:"effectivecellsize,attr"`
	EffectiveLaneWidth string    `xml:"effectivelanewidth,attr"`
	Links              []xmlLink `xml:"link"`
}

type xmlLink struct {
	ID         string `xml:"id,attr"`
	From       string `xml:"from,attr"`
	To         string `xml:"to,attr"`
	Length     string `xml:"length,attr"`
	FreeSpeed  string `xml:"freespeed,attr"`
	Capacity   string `xml:"capacity,attr"`
	PermLanes  string `xml:"permlanes,attr"`
	OneWay     string `xml:"oneway,attr"`
	Modes      string `xml:"modes,attr"`
	Attributes struct {
		Attributes []xmlLinkAttribute `xml:"attribute"`
	} `xml:"attributes"`
}

type xmlLinkAttribute struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// ParseNetwork reads a MATSim network file and returns its nodes, links and
// global link attributes. Nodes or links with missing required attributes
// are dropped with a warning.
func ParseNetwork(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open network file %s", path)
	}
	defer f.Close()

	var doc xmlNetwork
	if err := xml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, errors.Wrapf(err, "parse network file %s", path)
	}

	net := &Network{}
	if doc.Nodes == nil {
		log.Printf("<nodes> tag not found in network file %s", path)
	} else {
		for _, n := range doc.Nodes.Nodes {
			if n.ID == "" || n.X == "" || n.Y == "" {
				log.Printf("node with missing data ignored: id=%q x=%q y=%q", n.ID, n.X, n.Y)
				continue
			}
			net.Nodes = append(net.Nodes, RawNode{ID: n.ID, X: n.X, Y: n.Y})
		}
	}
	log.Printf("found %d nodes", len(net.Nodes))

	if doc.Links == nil {
		log.Printf("<links> tag not found in network file %s", path)
		return net, nil
	}
	net.Globals = parseGlobals(*doc.Links)

	for _, l := range doc.Links.Links {
		if l.ID == "" || l.From == "" || l.To == "" || l.Length == "" || l.FreeSpeed == "" ||
			l.Capacity == "" || l.PermLanes == "" || l.OneWay == "" || l.Modes == "" {
			log.Printf("link with missing attributes ignored: id=%q", l.ID)
			continue
		}
		rl := RawLink{
			ID:        l.ID,
			FromNode:  l.From,
			ToNode:    l.To,
			Length:    l.Length,
			FreeSpeed: l.FreeSpeed,
			Capacity:  l.Capacity,
			PermLanes: l.PermLanes,
			OneWay:    l.OneWay,
			Modes:     l.Modes,
		}
		for _, a := range l.Attributes.Attributes {
			if a.Name != "" && a.Value != "" {
				rl.Attributes = append(rl.Attributes, RawLinkAttribute{Name: a.Name, Value: a.Value})
			}
		}
		net.Links = append(net.Links, rl)
	}
	log.Printf("found %d links", len(net.Links))

	return net, nil
}

func parseGlobals(links xmlLinks) GlobalLinkAttributes {
	var g GlobalLinkAttributes
	if links.CapPeriod != "" {
		cp := links.CapPeriod
		g.CapPeriod = &cp
	}
	g.EffectiveCellSize = parseGlobalFloat("effectivecellsize", links.EffectiveCellSize)
	g.EffectiveLaneWidth = parseGlobalFloat("effectivelanewidth", links.EffectiveLaneWidth)
	return g
}

// parseGlobalFloat never returns nil: a <links> element without the
// attribute still inherits the 0.0 default.
func parseGlobalFloat(name, raw string) *float64 {
	v := 0.0
	if raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Printf("invalid value %q for %s, using default 0.0", raw, name)
		} else {
			v = parsed
		}
	}
	return &v
}
