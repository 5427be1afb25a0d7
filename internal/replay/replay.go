package replay

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	// ErrDiverged means the re-simulated run did not end like the recorded one.
	ErrDiverged = errors.New("replay: run diverged from journal")

	// ErrCorrupt means the journal cannot be replayed at all.
	ErrCorrupt = errors.New("replay: corrupt journal")
)

// Run re-simulates a journal and returns the final snapshot. Events are
// applied before the tick that follows them. The run must end in a game over
// after exactly Ticks ticks with the recorded score, otherwise ErrDiverged is
// returned together with the snapshot reached.
func Run(j Journal) (flappy.Snapshot, error) {
	if err := j.Config.Validate(); err != nil {
		return flappy.Snapshot{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	events := make([]Event, len(j.Events))
	copy(events, j.Events)
	sort.SliceStable(events, func(a, b int) bool {
		return events[a].Tick < events[b].Tick
	})
	for _, ev := range events {
		if !ev.Kind.Valid() {
			return flappy.Snapshot{}, fmt.Errorf("%w: unknown event kind %q", ErrCorrupt, ev.Kind)
		}
		if ev.Tick > j.Ticks {
			return flappy.Snapshot{}, fmt.Errorf("%w: event at tick %d after end %d", ErrCorrupt, ev.Tick, j.Ticks)
		}
	}

	e := flappy.NewSeeded(j.Config, j.Seed)
	next := 0
	for {
		for next < len(events) && events[next].Tick <= e.Ticks() {
			switch events[next].Kind {
			case EventJump:
				e.Jump()
			case EventSpawn:
				e.SpawnPipePair()
			}
			next++
		}
		if e.Over() || e.Ticks() >= j.Ticks {
			break
		}
		e.Tick()
	}

	snap := e.Snapshot()
	if !snap.Over() || snap.Tick != j.Ticks || snap.Points != j.Points {
		return snap, fmt.Errorf("%w: ended at tick %d with %g points (over=%v), recorded tick %d with %g points",
			ErrDiverged, snap.Tick, snap.Points, snap.Over(), j.Ticks, j.Points)
	}
	return snap, nil
}
