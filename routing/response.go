package routing

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/truckguide/geometry"
	"github.com/theoremus-urban-solutions/truckguide/polyline"
)

// Response is the subset of the provider's route response we consume.
type Response struct {
	Routes []Route `json:"routes" validate:"required,min=1,dive"`
}

// Route is one computed route.
type Route struct {
	ID       string    `json:"id"`
	Sections []Section `json:"sections" validate:"required,min=1,dive"`
}

// Section is one leg of a route.
type Section struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Departure Endpoint `json:"departure"`
	Arrival   Endpoint `json:"arrival"`
	Polyline  string   `json:"polyline"`
	Actions   []Action `json:"actions" validate:"dive"`
}

// Endpoint wraps the place a section departs from or arrives at.
type Endpoint struct {
	Place struct {
		Location *Location `json:"location"`
	} `json:"place"`
}

// Location is a provider coordinate. The provider spells longitude "lng".
type Location struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// Action is one turn-by-turn instruction.
type Action struct {
	Action      string  `json:"action" validate:"required"`
	Direction   string  `json:"direction,omitempty"`
	Severity    string  `json:"severity,omitempty"`
	Offset      int     `json:"offset" validate:"gte=0"`
	Length      float64 `json:"length" validate:"gte=0"`
	Duration    float64 `json:"duration" validate:"gte=0"`
	Instruction string  `json:"instruction"`
	NextRoad    *Road   `json:"nextRoad,omitempty"`
	CurrentRoad *Road   `json:"currentRoad,omitempty"`
}

// Road carries localized road names.
type Road struct {
	Name []struct {
		Value    string `json:"value"`
		Language string `json:"language"`
	} `json:"name"`
}

func (r *Road) firstName() string {
	if r == nil {
		return ""
	}
	for _, n := range r.Name {
		if n.Value != "" {
			return n.Value
		}
	}
	return ""
}

var validate = validator.New()

// ParseResponse decodes and validates a route response.
func ParseResponse(r io.Reader) (*Response, error) {
	var resp Response
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode route response: %w", err)
	}
	if err := validate.Struct(resp); err != nil {
		return nil, fmt.Errorf("invalid route response: %w", err)
	}
	return &resp, nil
}

// ParseInput is ParseResponse followed by Input on the first route.
func ParseInput(r io.Reader) (geometry.Input, error) {
	resp, err := ParseResponse(r)
	if err != nil {
		return geometry.Input{}, err
	}
	return resp.Routes[0].Input(), nil
}

// Input converts the route into builder input. A single-section route keeps
// its polyline string; sections of a multi-section route are decoded and
// joined, dropping the repeated first point of each following section.
func (rt Route) Input() geometry.Input {
	var in geometry.Input
	if len(rt.Sections) == 0 {
		return in
	}

	first, last := rt.Sections[0], rt.Sections[len(rt.Sections)-1]
	if loc := first.Departure.Place.Location; loc != nil {
		origin := loc.point()
		in.Origin = &origin
		if dst := last.Arrival.Place.Location; dst != nil {
			in.FallbackBearing = geometry.BearingDegrees(origin, dst.point())
		}
	}

	if len(rt.Sections) == 1 {
		in.Polyline = first.Polyline
		in.Actions = convertActions(first.Actions, 0)
		return in
	}

	for _, s := range rt.Sections {
		pts := polyline.Decode(s.Polyline)
		base := len(in.Points)
		if base > 0 && len(pts) > 0 && samePoint(in.Points[base-1], pts[0]) {
			base--
			pts = pts[1:]
		}
		for _, p := range pts {
			in.Points = append(in.Points, geometry.GeoPoint{Lat: p.Lat, Lon: p.Lon})
		}
		in.Actions = append(in.Actions, convertActions(s.Actions, base)...)
	}
	return in
}

func (l *Location) point() geometry.GeoPoint {
	return geometry.GeoPoint{Lat: l.Lat, Lon: l.Lng}
}

func samePoint(a geometry.GeoPoint, b polyline.Point) bool {
	return a.Lat == b.Lat && a.Lon == b.Lon
}

func convertActions(actions []Action, base int) []geometry.Action {
	out := make([]geometry.Action, 0, len(actions))
	for _, a := range actions {
		road := a.NextRoad.firstName()
		if road == "" {
			road = a.CurrentRoad.firstName()
		}
		out = append(out, geometry.Action{
			Index:           base + a.Offset,
			Type:            ManeuverType(a.Action, a.Direction, a.Severity),
			Instruction:     a.Instruction,
			LengthMeters:    a.Length,
			DurationSeconds: a.Duration,
			RoadName:        road,
		})
	}
	return out
}
