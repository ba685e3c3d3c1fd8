package guidance

import (
	"time"

	"github.com/theoremus-urban-solutions/truckguide/announce"
	"github.com/theoremus-urban-solutions/truckguide/geometry"
)

// DefaultStrikeLimit is the number of consecutive off-route fixes that
// trigger a reroute.
const DefaultStrikeLimit = 3

// Fix is one location sample. Only Lat and Lon take part in
// classification; the rest is carried for callers.
type Fix struct {
	Lat            float64   `json:"lat"`
	Lon            float64   `json:"lon"`
	AccuracyMeters float64   `json:"accuracy,omitempty"`
	SpeedMps       float64   `json:"speed,omitempty"`
	HeadingDegrees float64   `json:"heading,omitempty"`
	Time           time.Time `json:"time,omitempty"`
}

// Point returns the fix position.
func (f Fix) Point() geometry.GeoPoint {
	return geometry.GeoPoint{Lat: f.Lat, Lon: f.Lon}
}

// SnapMode selects how fixes are matched to the route.
type SnapMode string

const (
	// SnapVertex snaps to the nearest polyline point.
	SnapVertex SnapMode = "vertex"
	// SnapSegment projects onto the nearest polyline segment.
	SnapSegment SnapMode = "segment"
)

// GuidanceState is the engine-owned tracking state.
type GuidanceState struct {
	// LastKnownRouteIndex is the last polyline index at which the vehicle
	// was confirmed on route.
	LastKnownRouteIndex int
	// LastKnownAlongMeters is the distance along the route at that point.
	LastKnownAlongMeters float64
	// OffRouteStrikes counts consecutive off-route fixes.
	OffRouteStrikes int
	IsHighwayRoute  bool
	RoadClass       announce.RoadClass
	// RerouteSignalled is set once an edge-triggered reroute has been
	// emitted for the current off-route run.
	RerouteSignalled bool

	lastManeuverFrom int
}

// GuidanceTick is the result of processing one fix.
type GuidanceTick struct {
	// Valid is false for the empty tick returned by an engine without
	// geometry.
	Valid              bool               `json:"valid"`
	SnappedPoint       geometry.GeoPoint  `json:"snappedPoint"`
	RouteIndex         int                `json:"routeIndex"`
	DistanceToRoute    float64            `json:"distanceToRoute"`
	RemainingMeters    float64            `json:"remainingMeters"`
	NextManeuver       *geometry.Maneuver `json:"nextManeuver,omitempty"`
	DistanceToManeuver float64            `json:"distanceToManeuver"`
	Stage              announce.Stage     `json:"stage"`
	IsOffRoute         bool               `json:"isOffRoute"`
	OffRouteStrikes    int                `json:"offRouteStrikes"`
	ShouldReroute      bool               `json:"shouldReroute"`
	RoadClass          announce.RoadClass `json:"roadClass"`
}

// Options configures an Engine. The zero value gives the standard behaviour.
type Options struct {
	// StrikeLimit is the consecutive off-route count that triggers a
	// reroute. Values < 1 mean DefaultStrikeLimit.
	StrikeLimit int

	// SnapMode defaults to SnapVertex.
	SnapMode SnapMode

	// ContinuousReroute raises ShouldReroute on every tick at or past the
	// strike limit instead of once per off-route run.
	ContinuousReroute bool

	// RoadClass is the initial classification of the route.
	RoadClass announce.RoadClass

	// Policy overrides the threshold table. Nil means announce.DefaultPolicy.
	Policy announce.Policy
}
