package guidance

import "sync"

// TickFeed holds the most recent tick for one writer and any number of
// readers.
type TickFeed struct {
	mu   sync.RWMutex
	tick GuidanceTick
	seq  uint64
}

// Publish stores t as the latest tick.
func (f *TickFeed) Publish(t GuidanceTick) {
	if t.NextManeuver != nil {
		m := *t.NextManeuver
		t.NextManeuver = &m
	}
	f.mu.Lock()
	f.tick = t
	f.seq++
	f.mu.Unlock()
}

// Latest returns the last published tick and its sequence number. The
// sequence is 0 before the first Publish.
func (f *TickFeed) Latest() (GuidanceTick, uint64) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.tick, f.seq
}
