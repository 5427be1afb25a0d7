// Package replay records the inputs of a run and re-simulates them
// deterministically. A journal is the seed, the configuration and the
// ordered jump and spawn events of one run.
package replay

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// EventKind is the kind of an external event delivered to the engine.
type EventKind string

const (
	EventJump  EventKind = "jump"
	EventSpawn EventKind = "spawn"
)

// Valid reports whether k is a known event kind.
func (k EventKind) Valid() bool {
	return k == EventJump || k == EventSpawn
}

// Event is an input applied when the engine had simulated Tick ticks.
type Event struct {
	Tick uint64
	Kind EventKind
}

// Journal is the complete record of one run.
type Journal struct {
	Seed   int64
	Config config.Config
	Events []Event
	Points float64 // Final exact score
	Ticks  uint64  // Ticks simulated until game over
}

// Score returns the display score.
func (j Journal) Score() int {
	return int(j.Points)
}

// Jumps returns the number of jump events.
func (j Journal) Jumps() int {
	n := 0
	for _, ev := range j.Events {
		if ev.Kind == EventJump {
			n++
		}
	}
	return n
}

// Recorder accumulates the events of the current run.
type Recorder struct {
	seed   int64
	cfg    config.Config
	events []Event
}

// NewRecorder starts recording a run.
func NewRecorder(cfg config.Config, seed int64) *Recorder {
	return &Recorder{seed: seed, cfg: cfg}
}

// Reset discards recorded events and starts a new run with seed.
func (r *Recorder) Reset(seed int64) {
	r.seed = seed
	r.events = r.events[:0]
}

// Record appends an event.
func (r *Recorder) Record(tick uint64, kind EventKind) {
	r.events = append(r.events, Event{Tick: tick, Kind: kind})
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	return len(r.events)
}

// Finish returns the journal of the run. The recorder keeps its events.
func (r *Recorder) Finish(points float64, ticks uint64) Journal {
	events := make([]Event, len(r.events))
	copy(events, r.events)
	return Journal{
		Seed:   r.seed,
		Config: r.cfg,
		Events: events,
		Points: points,
		Ticks:  ticks,
	}
}
