package geometry

import (
	"sort"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/truckguide/polyline"
)

// Input is everything the builder needs from a routing response.
type Input struct {
	Polyline string
	// Points, when non-empty, are used instead of decoding Polyline.
	Points  []GeoPoint
	Actions []Action
	// Origin is the known start coordinate, used only by the degraded
	// fallback when the polyline decodes to nothing.
	Origin *GeoPoint
	// FallbackBearing is the assumed travel bearing for the fallback.
	FallbackBearing float64
}

// Builder turns routing responses into RouteGeometry values.
type Builder struct {
	log *zap.Logger
}

// NewBuilder returns a Builder logging to log. A nil logger discards output.
func NewBuilder(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{log: log}
}

// Build decodes in.Polyline (unless in.Points is set) and anchors in.Actions onto it. It never fails:
// unusable input yields an empty geometry.
func (b *Builder) Build(in Input) *RouteGeometry {
	points := in.Points
	if len(points) == 0 {
		points = fromPolyline(polyline.Decode(in.Polyline))
	}
	if len(points) == 0 && len(in.Actions) > 0 {
		return b.buildFallback(in)
	}
	return b.FromPoints(points, in.Actions)
}

// FromPoints builds geometry from already decoded points.
func (b *Builder) FromPoints(points []GeoPoint, actions []Action) *RouteGeometry {
	g := &RouteGeometry{
		points:     append([]GeoPoint(nil), points...),
		cumulative: cumulativeDistances(points),
	}
	g.maneuvers = b.anchorManeuvers(g.points, actions)
	return g
}

// Build is a convenience for NewBuilder(nil).Build(in).
func Build(in Input) *RouteGeometry {
	return NewBuilder(nil).Build(in)
}

func cumulativeDistances(points []GeoPoint) []float64 {
	if len(points) == 0 {
		return nil
	}
	cum := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		cum[i] = cum[i-1] + DistanceMeters(points[i-1], points[i])
	}
	return cum
}

func (b *Builder) anchorManeuvers(points []GeoPoint, actions []Action) []Maneuver {
	if len(actions) == 0 {
		return nil
	}
	kept := make([]Action, 0, len(actions))
	for _, a := range actions {
		if a.Index < 0 || a.Index >= len(points) {
			b.log.Warn("dropping action outside polyline",
				zap.Int("index", a.Index),
				zap.Int("points", len(points)),
				zap.String("type", string(a.Type)))
			continue
		}
		kept = append(kept, a)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Index < kept[j].Index
	})

	// Action lengths describe the leg after the action; a maneuver carries
	// the leg that leads up to it.
	out := make([]Maneuver, len(kept))
	for i, a := range kept {
		out[i] = newManeuver(points, a)
		if i > 0 {
			out[i].DistanceMeters = kept[i-1].LengthMeters
			out[i].DurationSeconds = kept[i-1].DurationSeconds
		}
	}
	return out
}

func newManeuver(points []GeoPoint, a Action) Maneuver {
	i := a.Index
	var before float64
	if i > 0 {
		before = BearingDegrees(points[i-1], points[i])
	}
	after := before
	if i+1 < len(points) {
		after = BearingDegrees(points[i], points[i+1])
	}
	typ := a.Type
	if typ == "" {
		typ = ManeuverUnknown
	}
	return Maneuver{
		PolylineIndex: i,
		Type:          typ,
		Instruction:   a.Instruction,
		BearingBefore: before,
		BearingAfter:  after,
		RoadName:      a.RoadName,
	}
}
