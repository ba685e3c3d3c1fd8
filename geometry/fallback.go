package geometry

import (
	"math"

	"go.uber.org/zap"
)

const (
	fallbackMinPoints     = 20
	fallbackMaxPoints     = 500
	fallbackSpacingMeters = 250.0
)

// buildFallback synthesizes a straight line from in.Origin along
// in.FallbackBearing whose length is the sum of the action legs. Each action
// is re-anchored at the synthetic point closest to the summed lengths of the
// actions before it, so the first action sits at the origin.
func (b *Builder) buildFallback(in Input) *RouteGeometry {
	if in.Origin == nil {
		b.log.Warn("polyline empty and no origin; returning empty degraded geometry",
			zap.Int("actions", len(in.Actions)))
		return &RouteGeometry{degraded: true}
	}

	starts := make([]float64, len(in.Actions))
	var total float64
	for i, a := range in.Actions {
		starts[i] = total
		if a.LengthMeters > 0 {
			total += a.LengthMeters
		}
	}

	n := int(math.Ceil(total/fallbackSpacingMeters)) + 1
	if n < fallbackMinPoints {
		n = fallbackMinPoints
	}
	if n > fallbackMaxPoints {
		n = fallbackMaxPoints
	}

	bearing := NormalizeBearing(in.FallbackBearing)
	points := make([]GeoPoint, n)
	step := total / float64(n-1)
	for i := range points {
		points[i] = Destination(*in.Origin, bearing, step*float64(i))
	}

	actions := make([]Action, len(in.Actions))
	for i, a := range in.Actions {
		a.Index = 0
		if step > 0 {
			a.Index = int(math.Round(starts[i] / step))
		}
		if a.Index >= n {
			a.Index = n - 1
		}
		actions[i] = a
	}

	b.log.Warn("polyline decoded to no points; synthesized degraded geometry",
		zap.Int("points", n),
		zap.Float64("total_meters", total),
		zap.Float64("bearing", bearing))

	g := b.FromPoints(points, actions)
	g.degraded = true
	return g
}
