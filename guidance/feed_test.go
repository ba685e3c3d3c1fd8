package guidance

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theoremus-urban-solutions/truckguide/geometry"
)

func TestTickFeed_Latest(t *testing.T) {
	var f TickFeed

	tick, seq := f.Latest()
	assert.Equal(t, uint64(0), seq)
	assert.False(t, tick.Valid)

	m := geometry.Maneuver{Type: geometry.ManeuverExit}
	f.Publish(GuidanceTick{Valid: true, RemainingMeters: 42, NextManeuver: &m})
	m.Type = geometry.ManeuverFerry

	tick, seq = f.Latest()
	assert.Equal(t, uint64(1), seq)
	assert.Equal(t, 42.0, tick.RemainingMeters)
	assert.Equal(t, geometry.ManeuverExit, tick.NextManeuver.Type)
}

func TestTickFeed_ConcurrentReaders(t *testing.T) {
	var f TickFeed
	var wg sync.WaitGroup

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var last uint64
			for i := 0; i < 200; i++ {
				_, seq := f.Latest()
				assert.GreaterOrEqual(t, seq, last)
				last = seq
			}
		}()
	}
	for i := 0; i < 200; i++ {
		f.Publish(GuidanceTick{Valid: true, RemainingMeters: float64(i)})
	}
	wg.Wait()

	tick, seq := f.Latest()
	assert.Equal(t, uint64(200), seq)
	assert.Equal(t, 199.0, tick.RemainingMeters)
}
