package guidance

import (
	"errors"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/truckguide/announce"
	"github.com/theoremus-urban-solutions/truckguide/geometry"
)

// ErrEmptyGeometry is returned when an engine is built on a route with no
// points.
var ErrEmptyGeometry = errors.New("guidance: route geometry has no points")

// Engine tracks progress along one RouteGeometry.
type Engine struct {
	geom  *geometry.RouteGeometry
	state GuidanceState

	strikeLimit int
	snapMode    SnapMode
	continuous  bool
	policy      announce.Policy
	log         *zap.Logger
}

// NewEngine returns an engine for geom. log may be nil.
func NewEngine(geom *geometry.RouteGeometry, opts Options, log *zap.Logger) (*Engine, error) {
	if geom.Empty() {
		return nil, ErrEmptyGeometry
	}
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		geom:        geom,
		strikeLimit: opts.StrikeLimit,
		snapMode:    opts.SnapMode,
		continuous:  opts.ContinuousReroute,
		policy:      opts.Policy,
		log:         log,
	}
	if e.strikeLimit < 1 {
		e.strikeLimit = DefaultStrikeLimit
	}
	if e.snapMode != SnapSegment {
		e.snapMode = SnapVertex
	}
	if e.policy == nil {
		e.policy = announce.DefaultPolicy()
	}
	e.setRoadClass(opts.RoadClass)
	return e, nil
}

// Geometry returns the route the engine tracks.
func (e *Engine) Geometry() *geometry.RouteGeometry { return e.geom }

// State returns a copy of the current tracking state.
func (e *Engine) State() GuidanceState { return e.state }

// StrikeLimit returns the configured reroute strike limit.
func (e *Engine) StrikeLimit() int { return e.strikeLimit }

// Thresholds returns the thresholds of the active road class.
func (e *Engine) Thresholds() announce.Thresholds {
	return e.policy.Lookup(e.state.RoadClass)
}

// SetHighwayMode switches between the highway and local threshold sets.
func (e *Engine) SetHighwayMode(highway bool) {
	if highway {
		e.setRoadClass(announce.Highway)
	} else {
		e.setRoadClass(announce.Local)
	}
}

// SetRoadClass selects the threshold set for the active route.
func (e *Engine) SetRoadClass(c announce.RoadClass) { e.setRoadClass(c) }

func (e *Engine) setRoadClass(c announce.RoadClass) {
	e.state.RoadClass = c
	e.state.IsHighwayRoute = c == announce.Highway
}

// ResetOffRouteState clears the strike count. Call it after accepting a new
// route so strikes from the old one do not carry over.
func (e *Engine) ResetOffRouteState() {
	e.state.OffRouteStrikes = 0
	e.state.RerouteSignalled = false
}

// OnLocation processes one fix. An engine without geometry returns an
// invalid, empty tick.
func (e *Engine) OnLocation(fix Fix) GuidanceTick {
	if e == nil || e.geom.Empty() {
		return GuidanceTick{}
	}

	s := e.snap(fix.Point())
	th := e.Thresholds()
	offRoute := s.distance > th.OffRouteMeters

	if offRoute {
		e.state.OffRouteStrikes++
		e.log.Debug("off-route fix",
			zap.Int("strikes", e.state.OffRouteStrikes),
			zap.Float64("distance_m", s.distance),
			zap.Float64("threshold_m", th.OffRouteMeters))
	} else {
		if e.state.OffRouteStrikes > 0 {
			e.log.Debug("back on route", zap.Int("cleared_strikes", e.state.OffRouteStrikes))
		}
		e.state.OffRouteStrikes = 0
		e.state.RerouteSignalled = false
		e.state.LastKnownRouteIndex = s.index
		e.state.LastKnownAlongMeters = s.along
		e.state.lastManeuverFrom = s.maneuverFrom
	}

	reroute := e.rerouteDecision()
	if reroute {
		e.log.Info("reroute requested",
			zap.Int("strikes", e.state.OffRouteStrikes),
			zap.Int("last_known_index", e.state.LastKnownRouteIndex))
	}

	along, from := s.along, s.maneuverFrom
	if offRoute {
		along, from = e.state.LastKnownAlongMeters, e.state.lastManeuverFrom
	}

	tick := GuidanceTick{
		Valid:           true,
		SnappedPoint:    s.point,
		RouteIndex:      s.index,
		DistanceToRoute: s.distance,
		RemainingMeters: nonNegative(e.geom.TotalMeters() - along),
		IsOffRoute:      offRoute,
		OffRouteStrikes: e.state.OffRouteStrikes,
		ShouldReroute:   reroute,
		RoadClass:       e.state.RoadClass,
	}
	if mi := e.geom.NextManeuver(from); mi >= 0 {
		m := e.geom.ManeuverAt(mi)
		tick.NextManeuver = &m
		tick.DistanceToManeuver = nonNegative(e.geom.CumulativeAt(m.PolylineIndex) - along)
		tick.Stage = th.Stage(tick.DistanceToManeuver)
	}
	return tick
}

func (e *Engine) rerouteDecision() bool {
	if e.state.OffRouteStrikes < e.strikeLimit {
		return false
	}
	if e.continuous {
		return true
	}
	if e.state.RerouteSignalled {
		return false
	}
	e.state.RerouteSignalled = true
	return true
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
