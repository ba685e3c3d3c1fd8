package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LineString returns the route as an orb.LineString.
func (g *RouteGeometry) LineString() orb.LineString {
	ls := make(orb.LineString, g.Len())
	for i := range ls {
		ls[i] = g.points[i].Orb()
	}
	return ls
}

// FeatureCollection renders the route line and one point feature per
// maneuver, for inspection in GeoJSON viewers.
func (g *RouteGeometry) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if g.Len() == 0 {
		return fc
	}

	line := geojson.NewFeature(g.LineString())
	line.Properties["kind"] = "route"
	line.Properties["totalMeters"] = g.TotalMeters()
	line.Properties["degraded"] = g.degraded
	fc.Append(line)

	for _, m := range g.maneuvers {
		f := geojson.NewFeature(g.points[m.PolylineIndex].Orb())
		f.Properties["kind"] = "maneuver"
		f.Properties["type"] = string(m.Type)
		f.Properties["index"] = m.PolylineIndex
		f.Properties["instruction"] = m.Instruction
		f.Properties["bearingBefore"] = m.BearingBefore
		f.Properties["bearingAfter"] = m.BearingAfter
		f.Properties["distanceAlong"] = g.cumulative[m.PolylineIndex]
		if m.RoadName != "" {
			f.Properties["roadName"] = m.RoadName
		}
		fc.Append(f)
	}
	return fc
}
