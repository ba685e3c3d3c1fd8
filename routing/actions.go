package routing

import (
	"strings"

	"github.com/theoremus-urban-solutions/truckguide/geometry"
)

// ManeuverType maps a provider action, direction and severity onto a
// geometry.ManeuverType.
func ManeuverType(action, direction, severity string) geometry.ManeuverType {
	direction = strings.ToLower(direction)
	switch strings.ToLower(action) {
	case "depart":
		return geometry.ManeuverStart
	case "arrive":
		return geometry.ManeuverDestination
	case "continue", "continuehighway":
		return geometry.ManeuverStraight
	case "turn":
		return turnType(direction, strings.ToLower(severity))
	case "uturn":
		return geometry.ManeuverUTurn
	case "keep":
		switch direction {
		case "left":
			return geometry.ManeuverKeepLeft
		case "right":
			return geometry.ManeuverKeepRight
		}
		return geometry.ManeuverStraight
	case "enterhighway":
		return geometry.ManeuverMerge
	case "ramp":
		return geometry.ManeuverRamp
	case "exit", "enhancedexit":
		return geometry.ManeuverExit
	case "roundaboutenter", "roundaboutexit", "roundaboutpass":
		return geometry.ManeuverRoundabout
	case "ferry":
		return geometry.ManeuverFerry
	}
	return geometry.ManeuverUnknown
}

func turnType(direction, severity string) geometry.ManeuverType {
	switch direction {
	case "left":
		switch severity {
		case "light":
			return geometry.ManeuverSlightLeft
		case "heavy":
			return geometry.ManeuverSharpLeft
		}
		return geometry.ManeuverTurnLeft
	case "right":
		switch severity {
		case "light":
			return geometry.ManeuverSlightRight
		case "heavy":
			return geometry.ManeuverSharpRight
		}
		return geometry.ManeuverTurnRight
	}
	return geometry.ManeuverStraight
}
