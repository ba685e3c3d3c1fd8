package geometry

import (
	"math"

	"github.com/paulmach/orb/geo"
)

// DistanceMeters returns the haversine distance between a and b.
func DistanceMeters(a, b GeoPoint) float64 {
	return geo.DistanceHaversine(a.Orb(), b.Orb())
}

// BearingDegrees returns the initial great-circle bearing from a to b in
// [0, 360). Identical points return 0.
func BearingDegrees(a, b GeoPoint) float64 {
	if a == b {
		return 0
	}
	return NormalizeBearing(geo.Bearing(a.Orb(), b.Orb()))
}

// NormalizeBearing maps any angle in degrees into [0, 360).
func NormalizeBearing(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Destination returns the point reached from p after distanceMeters along
// the initial bearing.
func Destination(p GeoPoint, bearingDegrees, distanceMeters float64) GeoPoint {
	return FromOrb(geo.PointAtBearingAndDistance(p.Orb(), bearingDegrees, distanceMeters))
}

// Projection is the result of projecting a point onto the segment a-b.
type Projection struct {
	Point GeoPoint
	// Fraction along a-b, in [0, 1].
	Fraction float64
	// Meters from the projected point to the original point.
	DistanceMeters float64
}

// ProjectOntoSegment projects p onto the segment a-b in a local
// equirectangular frame centred at p, which is accurate for the short
// segments of a routing polyline.
func ProjectOntoSegment(p, a, b GeoPoint) Projection {
	kx := math.Cos(p.Lat * math.Pi / 180)
	ax, ay := (a.Lon-p.Lon)*kx, a.Lat-p.Lat
	bx, by := (b.Lon-p.Lon)*kx, b.Lat-p.Lat

	vx, vy := bx-ax, by-ay
	denom := vx*vx + vy*vy
	t := 0.0
	if denom > 0 {
		t = -(ax*vx + ay*vy) / denom
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	proj := GeoPoint{
		Lat: a.Lat + t*(b.Lat-a.Lat),
		Lon: a.Lon + t*(b.Lon-a.Lon),
	}
	return Projection{Point: proj, Fraction: t, DistanceMeters: DistanceMeters(p, proj)}
}
