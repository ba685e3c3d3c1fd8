package polyline

import "math"

const (
	// Precision5 is the primary coordinate precision factor.
	Precision5 = 1e5
	// Precision6 is used when a 1e5 reading falls outside valid degrees.
	Precision6 = 1e6

	charOffset   = 63 + 1
	groupMask    = 0x1f
	continuation = 0x20
	maxShift     = 63
)

// Point is a decoded coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether p lies within the valid degree range.
func (p Point) Valid() bool {
	return !math.IsNaN(p.Lat) && !math.IsNaN(p.Lon) &&
		p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Decode decodes s at 1e5 precision, retrying at 1e6 when the 1e5 reading
// yields a coordinate outside valid degree range. It never fails; an empty
// or unparseable string decodes to no points.
func Decode(s string) []Point {
	raw := decodeIntegers(s)
	if len(raw) == 0 {
		return nil
	}
	points := scale(raw, Precision5)
	for _, p := range points {
		if !p.Valid() {
			return scale(raw, Precision6)
		}
	}
	return points
}

// DecodeWithPrecision decodes s using a fixed precision factor.
func DecodeWithPrecision(s string, factor float64) []Point {
	raw := decodeIntegers(s)
	if len(raw) == 0 || factor <= 0 {
		return nil
	}
	return scale(raw, factor)
}

type rawPoint struct {
	lat, lon int64
}

func scale(raw []rawPoint, factor float64) []Point {
	out := make([]Point, len(raw))
	for i, r := range raw {
		out[i] = Point{Lat: float64(r.lat) / factor, Lon: float64(r.lon) / factor}
	}
	return out
}

// decodeIntegers returns the running accumulator values for every complete
// (lat, lon) pair in s.
func decodeIntegers(s string) []rawPoint {
	var (
		out      []rawPoint
		lat, lon int64
		index    int
	)
	for index < len(s) {
		dLat, next, ok := decodeValue(s, index)
		if !ok {
			return out
		}
		dLon, next, ok := decodeValue(s, next)
		if !ok {
			return out
		}
		index = next
		lat += dLat
		lon += dLon
		out = append(out, rawPoint{lat: lat, lon: lon})
	}
	return out
}

// decodeValue reads one zig-zag signed integer starting at index. ok is false
// when the data ends mid-integer or contains a character outside the alphabet.
func decodeValue(s string, index int) (delta int64, next int, ok bool) {
	var (
		result uint64
		shift  uint
	)
	for {
		if index >= len(s) || shift > maxShift {
			return 0, index, false
		}
		value := int(s[index]) - charOffset
		index++
		if value < 0 || value > 0x3f {
			return 0, index, false
		}
		result += uint64(value&groupMask) << shift
		shift += 5
		if value&continuation == 0 {
			break
		}
	}
	if result&1 != 0 {
		return -int64(result >> 1), index, true
	}
	return int64(result >> 1), index, true
}
