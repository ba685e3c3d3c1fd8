// Package routing reads the truck-routing provider's route response and
// turns it into geometry.Input.
//
// Only the first route of a response is used. Its sections are joined into
// one polyline; action offsets are rebased onto the joined point list.
// HTTP transport and request construction live with the caller.
package routing
