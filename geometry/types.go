package geometry

import (
	"github.com/paulmach/orb"

	"github.com/theoremus-urban-solutions/truckguide/polyline"
)

// GeoPoint is a WGS-84 coordinate in decimal degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Orb returns p as an orb.Point (lon, lat).
func (p GeoPoint) Orb() orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

// FromOrb converts an orb.Point (lon, lat) to a GeoPoint.
func FromOrb(p orb.Point) GeoPoint {
	return GeoPoint{Lat: p.Lat(), Lon: p.Lon()}
}

func fromPolyline(pts []polyline.Point) []GeoPoint {
	if len(pts) == 0 {
		return nil
	}
	out := make([]GeoPoint, len(pts))
	for i, p := range pts {
		out[i] = GeoPoint{Lat: p.Lat, Lon: p.Lon}
	}
	return out
}

// ManeuverType is the category of a driving instruction.
type ManeuverType string

const (
	ManeuverStart       ManeuverType = "start"
	ManeuverStraight    ManeuverType = "straight"
	ManeuverTurnLeft    ManeuverType = "turn-left"
	ManeuverTurnRight   ManeuverType = "turn-right"
	ManeuverSlightLeft  ManeuverType = "slight-left"
	ManeuverSlightRight ManeuverType = "slight-right"
	ManeuverSharpLeft   ManeuverType = "sharp-left"
	ManeuverSharpRight  ManeuverType = "sharp-right"
	ManeuverUTurn       ManeuverType = "u-turn"
	ManeuverKeepLeft    ManeuverType = "keep-left"
	ManeuverKeepRight   ManeuverType = "keep-right"
	ManeuverMerge       ManeuverType = "merge"
	ManeuverRamp        ManeuverType = "ramp"
	ManeuverExit        ManeuverType = "exit"
	ManeuverRoundabout  ManeuverType = "roundabout"
	ManeuverFerry       ManeuverType = "ferry"
	ManeuverDestination ManeuverType = "destination"
	ManeuverUnknown     ManeuverType = "unknown"
)

// Action is one turn-by-turn instruction as delivered by the routing
// provider, anchored by Index into the decoded polyline. LengthMeters and
// DurationSeconds describe the leg that follows the action.
type Action struct {
	Index           int
	Type            ManeuverType
	Instruction     string
	LengthMeters    float64
	DurationSeconds float64
	RoadName        string
}

// Maneuver is an action anchored to a point of the built geometry.
// DistanceMeters and DurationSeconds cover the leg from the previous
// maneuver; they are zero for the first one.
type Maneuver struct {
	PolylineIndex   int          `json:"polylineIndex"`
	Type            ManeuverType `json:"type"`
	Instruction     string       `json:"instruction"`
	BearingBefore   float64      `json:"bearingBefore"`
	BearingAfter    float64      `json:"bearingAfter"`
	DistanceMeters  float64      `json:"distanceMeters"`
	DurationSeconds float64      `json:"durationSeconds"`
	RoadName        string       `json:"roadName,omitempty"`
}

// RouteGeometry is the decoded route with per-point cumulative distance and
// its maneuvers. The zero value is an empty route.
type RouteGeometry struct {
	points     []GeoPoint
	cumulative []float64
	maneuvers  []Maneuver
	degraded   bool
}

// Len returns the number of points.
func (g *RouteGeometry) Len() int {
	if g == nil {
		return 0
	}
	return len(g.points)
}

// Empty reports whether the geometry has no points.
func (g *RouteGeometry) Empty() bool { return g.Len() == 0 }

// Degraded reports whether the geometry was synthesized by the fallback path.
func (g *RouteGeometry) Degraded() bool { return g != nil && g.degraded }

// PointAt returns the i-th point. It panics if i is out of range.
func (g *RouteGeometry) PointAt(i int) GeoPoint { return g.points[i] }

// CumulativeAt returns the distance traveled from the first point to the
// i-th point. It panics if i is out of range.
func (g *RouteGeometry) CumulativeAt(i int) float64 { return g.cumulative[i] }

// TotalMeters is the cumulative distance at the last point, 0 when empty.
func (g *RouteGeometry) TotalMeters() float64 {
	if g.Len() == 0 {
		return 0
	}
	return g.cumulative[len(g.cumulative)-1]
}

// Points returns a copy of the points.
func (g *RouteGeometry) Points() []GeoPoint {
	if g.Len() == 0 {
		return nil
	}
	return append([]GeoPoint(nil), g.points...)
}

// CumulativeMeters returns a copy of the cumulative distances.
func (g *RouteGeometry) CumulativeMeters() []float64 {
	if g.Len() == 0 {
		return nil
	}
	return append([]float64(nil), g.cumulative...)
}

// Maneuvers returns a copy of the maneuvers ordered by polyline index.
func (g *RouteGeometry) Maneuvers() []Maneuver {
	if g == nil || len(g.maneuvers) == 0 {
		return nil
	}
	return append([]Maneuver(nil), g.maneuvers...)
}

// NumManeuvers returns the number of maneuvers.
func (g *RouteGeometry) NumManeuvers() int {
	if g == nil {
		return 0
	}
	return len(g.maneuvers)
}

// ManeuverAt returns the i-th maneuver. It panics if i is out of range.
func (g *RouteGeometry) ManeuverAt(i int) Maneuver { return g.maneuvers[i] }

// NextManeuver returns the position in the maneuver list of the first
// maneuver whose polyline index is >= index, or -1 if there is none.
func (g *RouteGeometry) NextManeuver(index int) int {
	if g == nil {
		return -1
	}
	lo, hi := 0, len(g.maneuvers)
	for lo < hi {
		mid := (lo + hi) / 2
		if g.maneuvers[mid].PolylineIndex < index {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == len(g.maneuvers) {
		return -1
	}
	return lo
}
