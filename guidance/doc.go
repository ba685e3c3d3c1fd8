// Package guidance tracks a vehicle against one computed route.
//
// An Engine owns the mutable GuidanceState for a single active route. Each
// GPS fix is snapped onto the RouteGeometry, classified on- or off-route with
// the road-class threshold from package announce, and turned into a
// GuidanceTick carrying remaining distance, the next maneuver and the reroute
// decision.
//
// A reroute is only requested after StrikeLimit consecutive off-route fixes
// so that a single noisy fix never triggers one. By default the signal is
// edge-triggered: ShouldReroute is true on the tick the limit is reached and
// stays false until the vehicle is back on route or ResetOffRouteState is
// called. Options.ContinuousReroute keeps it raised on every tick instead.
//
// Engines are not safe for concurrent use. Hosts that read ticks from
// another goroutine can publish them through a TickFeed.
package guidance
