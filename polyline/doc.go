// Package polyline decodes and encodes the routing provider's flexible
// polyline wire format.
//
// A polyline is a sequence of delta-encoded, zig-zag signed integers written
// as 5-bit groups, one printable character per group. Bit 0x20 of a group
// marks that more groups follow. Each output point consumes two integers:
// a latitude delta and a longitude delta, applied to running accumulators
// and scaled by a fixed precision factor.
//
// Decoding is lenient: truncated or malformed trailing data ends the decode
// and whatever points were complete are returned. Callers must handle an
// empty result.
//
//	points := polyline.Decode(section.Polyline)
//	if len(points) == 0 {
//	    // fall back to a synthesized geometry
//	}
package polyline
