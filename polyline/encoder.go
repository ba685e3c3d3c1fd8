package polyline

import "math"

// Encode encodes points at 1e5 precision.
func Encode(points []Point) string {
	return EncodeWithPrecision(points, Precision5)
}

// EncodeWithPrecision encodes points so that Decode (or DecodeWithPrecision
// with the same factor) reads them back within half a unit of precision.
func EncodeWithPrecision(points []Point, factor float64) string {
	if len(points) == 0 || factor <= 0 {
		return ""
	}
	buf := make([]byte, 0, len(points)*8)
	var prevLat, prevLon int64
	for _, p := range points {
		lat := int64(math.Round(p.Lat * factor))
		lon := int64(math.Round(p.Lon * factor))
		buf = encodeValue(buf, lat-prevLat)
		buf = encodeValue(buf, lon-prevLon)
		prevLat, prevLon = lat, lon
	}
	return string(buf)
}

func encodeValue(buf []byte, delta int64) []byte {
	var v uint64
	if delta < 0 {
		v = uint64(-delta)<<1 | 1
	} else {
		v = uint64(delta) << 1
	}
	for v >= continuation {
		buf = append(buf, byte((v&groupMask)|continuation)+charOffset)
		v >>= 5
	}
	return append(buf, byte(v)+charOffset)
}
