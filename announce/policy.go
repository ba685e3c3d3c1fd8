package announce

import (
	"fmt"
	"strings"
)

// RoadClass is a coarse road category.
type RoadClass int

const (
	Local RoadClass = iota
	Arterial
	Highway
)

func (c RoadClass) String() string {
	switch c {
	case Highway:
		return "highway"
	case Arterial:
		return "arterial"
	case Local:
		return "local"
	}
	return fmt.Sprintf("RoadClass(%d)", int(c))
}

// ParseRoadClass accepts "highway", "arterial" or "local" in any case.
func ParseRoadClass(s string) (RoadClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "highway":
		return Highway, nil
	case "arterial":
		return Arterial, nil
	case "local", "":
		return Local, nil
	}
	return Local, fmt.Errorf("unknown road class %q", s)
}

// Thresholds are the distances, in meters, associated with one road class.
type Thresholds struct {
	OffRouteMeters  float64
	FarMeters       float64
	NearMeters      float64
	ImmediateMeters float64
}

// Policy maps each road class to its thresholds.
type Policy map[RoadClass]Thresholds

var table = Policy{
	Highway:  {OffRouteMeters: 90, FarMeters: 1200, NearMeters: 600, ImmediateMeters: 400},
	Arterial: {OffRouteMeters: 60, FarMeters: 400, NearMeters: 200, ImmediateMeters: 100},
	Local:    {OffRouteMeters: 35, FarMeters: 250, NearMeters: 150, ImmediateMeters: 80},
}

// DefaultPolicy returns a copy of the standard table.
func DefaultPolicy() Policy {
	p := make(Policy, len(table))
	for k, v := range table {
		p[k] = v
	}
	return p
}

// Lookup returns the standard thresholds for c. Unknown classes get the
// local (strictest) set.
func Lookup(c RoadClass) Thresholds {
	return table.Lookup(c)
}

// Lookup returns the thresholds for c, falling back to the standard table
// when p has no entry.
func (p Policy) Lookup(c RoadClass) Thresholds {
	if t, ok := p[c]; ok {
		return t
	}
	if t, ok := table[c]; ok {
		return t
	}
	return table[Local]
}

// Stage is an announcement band.
type Stage int

const (
	StageNone Stage = iota
	StageFar
	StageNear
	StageImmediate
)

func (s Stage) String() string {
	switch s {
	case StageFar:
		return "far"
	case StageNear:
		return "near"
	case StageImmediate:
		return "immediate"
	}
	return "none"
}

// Stage returns the tightest band that distanceMeters falls within.
func (t Thresholds) Stage(distanceMeters float64) Stage {
	switch {
	case distanceMeters < 0:
		return StageNone
	case distanceMeters <= t.ImmediateMeters:
		return StageImmediate
	case distanceMeters <= t.NearMeters:
		return StageNear
	case distanceMeters <= t.FarMeters:
		return StageFar
	}
	return StageNone
}

// MarshalText implements encoding.TextMarshaler.
func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Stage) UnmarshalText(b []byte) error {
	switch string(b) {
	case "none", "":
		*s = StageNone
	case "far":
		*s = StageFar
	case "near":
		*s = StageNear
	case "immediate":
		*s = StageImmediate
	default:
		return fmt.Errorf("unknown announcement stage %q", b)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c RoadClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *RoadClass) UnmarshalText(b []byte) error {
	v, err := ParseRoadClass(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
