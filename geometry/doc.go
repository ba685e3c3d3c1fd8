/*
Package geometry builds the immutable, route-scoped geometry the guidance
engine tracks against.

A RouteGeometry is built once per route plan from the provider's polyline and
its list of turn-by-turn actions:

	b := geometry.NewBuilder(logger)
	route := b.Build(geometry.Input{
	    Polyline: section.Polyline,
	    Actions:  actions,
	    Origin:   &departure,
	})

The result holds the decoded points, the cumulative great-circle distance at
each point, and the maneuvers anchored to point indices with their bearings.
Nothing on a RouteGeometry can be mutated after Build returns; accessors hand
out copies.

# Degraded geometry

When the polyline decodes to nothing but the provider still returned actions,
the builder synthesizes a straight great-circle line from the origin along the
fallback bearing with the summed leg length. Such geometry reports
Degraded() == true so callers can decide whether to trust it.

# Distances

Distances use the haversine formula on a spherical earth via
github.com/paulmach/orb/geo. Bearings are initial great-circle bearings
normalised to [0, 360).
*/
package geometry
