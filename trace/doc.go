// Package trace loads recorded GPS fix traces for replay against a route.
//
// A trace is a JSON array of fixes:
//
//	[
//	  {"lat": 44.9778, "lon": -93.2650, "accuracy": 5, "speed": 22.1, "time": "2026-03-01T14:00:00Z"},
//	  {"lat": 44.9781, "lon": -93.2641}
//	]
//
// Every fix is validated; coordinates outside WGS-84 degree range reject the
// whole trace.
package trace
