package main

import (
	"encoding/json"
	"io"

	"go.uber.org/zap"

	lib "github.com/theoremus-urban-solutions/truckguide"
	"github.com/theoremus-urban-solutions/truckguide/announce"
	"github.com/theoremus-urban-solutions/truckguide/geometry"
	"github.com/theoremus-urban-solutions/truckguide/guidance"
)

type replayLine struct {
	Seq  int                   `json:"seq"`
	Fix  guidance.Fix          `json:"fix"`
	Tick guidance.GuidanceTick `json:"tick"`
	// Announce is set on the fix where a maneuver enters a tighter band.
	Announce string `json:"announce,omitempty"`
}

// replay drives the session with every fix and writes one JSON line per
// tick. Routing is not available offline, so a reroute request re-accepts
// the current route, which clears the off-route state.
func replay(w io.Writer, s *lib.Session, in geometry.Input, fixes []guidance.Fix, log *zap.Logger) error {
	enc := json.NewEncoder(w)
	tracker := stageTracker{}
	for i, fix := range fixes {
		tick := s.OnLocation(fix)
		line := replayLine{Seq: i, Fix: fix, Tick: tick}
		if stage, ok := tracker.advance(tick); ok {
			line.Announce = stage.String()
			log.Info("announce",
				zap.String("stage", stage.String()),
				zap.String("maneuver", string(tick.NextManeuver.Type)),
				zap.Float64("distance_m", tick.DistanceToManeuver))
		}
		if err := enc.Encode(line); err != nil {
			return err
		}
		if tick.ShouldReroute {
			log.Warn("reroute requested; re-accepting current route",
				zap.Int("seq", i),
				zap.Int("strikes", tick.OffRouteStrikes))
			if err := s.AcceptRoute(in); err != nil {
				return err
			}
		}
	}
	log.Info("replay finished", zap.Int("fixes", len(fixes)), zap.Int("reroutes", s.Reroutes()))
	return nil
}

// stageTracker emits each announcement band at most once per maneuver.
type stageTracker struct {
	started  bool
	maneuver int
	stage    announce.Stage
}

func (st *stageTracker) advance(t guidance.GuidanceTick) (announce.Stage, bool) {
	if !t.Valid || t.NextManeuver == nil || t.IsOffRoute {
		return announce.StageNone, false
	}
	if !st.started || t.NextManeuver.PolylineIndex != st.maneuver {
		st.started, st.maneuver, st.stage = true, t.NextManeuver.PolylineIndex, announce.StageNone
	}
	if t.Stage <= st.stage {
		return announce.StageNone, false
	}
	st.stage = t.Stage
	return t.Stage, true
}
