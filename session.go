package truckguide

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/truckguide/announce"
	"github.com/theoremus-urban-solutions/truckguide/geometry"
	"github.com/theoremus-urban-solutions/truckguide/guidance"
)

// Session is one navigation trip: the active route, its engine and the
// latest tick. OnLocation and AcceptRoute must be called from a single
// goroutine; Latest may be called from any.
type Session struct {
	ID string

	log     *zap.Logger
	builder *geometry.Builder
	opts    guidance.Options
	engine  *guidance.Engine
	feed    guidance.TickFeed

	reroutes int
}

// NewSession builds the route geometry for in and starts tracking it.
func NewSession(in geometry.Input, opts guidance.Options, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.NewString()
	log = log.With(zap.String("session", id))
	s := &Session{
		ID:      id,
		log:     log,
		builder: geometry.NewBuilder(log),
		opts:    opts,
	}
	if err := s.install(in); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) install(in geometry.Input) error {
	geom := s.builder.Build(in)
	engine, err := guidance.NewEngine(geom, s.opts, s.log)
	if err != nil {
		return fmt.Errorf("session %s: %w", s.ID, err)
	}
	s.engine = engine
	s.log.Info("route installed",
		zap.Int("points", geom.Len()),
		zap.Int("maneuvers", geom.NumManeuvers()),
		zap.Float64("total_m", geom.TotalMeters()),
		zap.Bool("degraded", geom.Degraded()),
		zap.Stringer("road_class", s.opts.RoadClass))
	return nil
}

// OnLocation feeds one fix to the engine and publishes the resulting tick.
func (s *Session) OnLocation(fix guidance.Fix) guidance.GuidanceTick {
	tick := s.engine.OnLocation(fix)
	s.feed.Publish(tick)
	return tick
}

// AcceptRoute replaces the active route after a reroute. The road class
// in effect is carried over and the off-route state starts clean. On error
// the previous route stays active.
func (s *Session) AcceptRoute(in geometry.Input) error {
	s.opts.RoadClass = s.engine.State().RoadClass
	prev := s.engine
	if err := s.install(in); err != nil {
		s.engine = prev
		return err
	}
	s.engine.ResetOffRouteState()
	s.reroutes++
	return nil
}

// SetRoadClass reclassifies the active route.
func (s *Session) SetRoadClass(c announce.RoadClass) {
	s.opts.RoadClass = c
	s.engine.SetRoadClass(c)
}

// Latest returns the most recently published tick and its sequence number.
func (s *Session) Latest() (guidance.GuidanceTick, uint64) {
	return s.feed.Latest()
}

// Engine returns the engine tracking the active route.
func (s *Session) Engine() *guidance.Engine { return s.engine }

// Reroutes returns how many replacement routes have been accepted.
func (s *Session) Reroutes() int { return s.reroutes }
