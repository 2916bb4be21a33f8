package converter

import (
	"strconv"

	geojson "github.com/paulmach/go.geojson"

	"github.com/interscity/matsim-to-htc/matsim"
)

// BuildNetworkGeoJSON renders the parsed network as a feature collection
// for map preview: one Point per node and one two-point LineString per
// link. Nodes whose coordinates do not parse as floats are skipped with a
// warning; links touching an unknown or skipped node are skipped too.
func BuildNetworkGeoJSON(net *matsim.Network, warns *WarningAggregator) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	coords := make(map[string][]float64, len(net.Nodes))
	for _, rn := range net.Nodes {
		x, errX := strconv.ParseFloat(rn.X, 64)
		y, errY := strconv.ParseFloat(rn.Y, 64)
		if errX != nil || errY != nil {
			warns.Add(WarningInvalidCoordinates, rn.ID)
			continue
		}
		pt := []float64{x, y}
		coords[rn.ID] = pt
		f := geojson.NewPointFeature(pt)
		f.SetProperty("id", rn.ID)
		fc.AddFeature(f)
	}

	for _, rl := range net.Links {
		from, okFrom := coords[rl.FromNode]
		to, okTo := coords[rl.ToNode]
		if !okFrom || !okTo {
			continue
		}
		f := geojson.NewLineStringFeature([][]float64{from, to})
		f.SetProperty("id", rl.ID)
		f.SetProperty("from", rl.FromNode)
		f.SetProperty("to", rl.ToNode)
		if t := linkTypeAttribute(rl.Attributes); t != nil {
			f.SetProperty("type", *t)
		}
		fc.AddFeature(f)
	}

	return fc
}
