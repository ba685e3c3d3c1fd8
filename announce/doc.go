// Package announce holds the road-class threshold table shared by the
// guidance engine and the voice/UI layer.
//
// The engine reads OffRouteMeters to classify fixes. Callers use the
// Far/Near/Immediate distances to time maneuver announcements; Stage maps a
// distance-to-maneuver onto one of those bands.
package announce
