package guidance

import (
	"math"

	"github.com/theoremus-urban-solutions/truckguide/geometry"
)

type snapResult struct {
	// index is the nearest vertex, or the start of the nearest segment.
	index int
	// maneuverFrom is the smallest polyline index not yet passed.
	maneuverFrom int
	along        float64
	point        geometry.GeoPoint
	distance     float64
}

func (e *Engine) snap(p geometry.GeoPoint) snapResult {
	if e.snapMode == SnapSegment && e.geom.Len() > 1 {
		return snapToSegment(e.geom, p)
	}
	return snapToVertex(e.geom, p)
}

func snapToVertex(g *geometry.RouteGeometry, p geometry.GeoPoint) snapResult {
	best, bestDist := 0, math.Inf(1)
	for i := 0; i < g.Len(); i++ {
		if d := geometry.DistanceMeters(p, g.PointAt(i)); d < bestDist {
			best, bestDist = i, d
		}
	}
	return snapResult{
		index:        best,
		maneuverFrom: best,
		along:        g.CumulativeAt(best),
		point:        g.PointAt(best),
		distance:     bestDist,
	}
}

func snapToSegment(g *geometry.RouteGeometry, p geometry.GeoPoint) snapResult {
	best := snapResult{distance: math.Inf(1)}
	for i := 0; i+1 < g.Len(); i++ {
		proj := geometry.ProjectOntoSegment(p, g.PointAt(i), g.PointAt(i+1))
		if proj.DistanceMeters >= best.distance {
			continue
		}
		start, end := g.CumulativeAt(i), g.CumulativeAt(i+1)
		r := snapResult{
			index:        i,
			maneuverFrom: i,
			along:        start + proj.Fraction*(end-start),
			point:        proj.Point,
			distance:     proj.DistanceMeters,
		}
		if proj.Fraction > 0 {
			r.maneuverFrom = i + 1
		}
		if proj.Fraction >= 1 {
			r.index = i + 1
			r.along = end
			r.point = g.PointAt(i + 1)
		}
		best = r
	}
	return best
}
