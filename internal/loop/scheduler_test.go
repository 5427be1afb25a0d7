package loop

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

type fakeTarget struct {
	calls  []string
	overAt int // Tick count at which Over starts returning true, 0 = never
	ticks  int
}

func (f *fakeTarget) Tick() {
	f.ticks++
	f.calls = append(f.calls, "tick")
}

func (f *fakeTarget) SpawnPipePair() {
	f.calls = append(f.calls, "spawn")
}

func (f *fakeTarget) Over() bool {
	return f.overAt > 0 && f.ticks >= f.overAt
}

func TestFromConfig(t *testing.T) {
	s := FromConfig(config.Default())

	if s.Interval() != time.Second/60 {
		t.Errorf("Interval() = %v, expected %v", s.Interval(), time.Second/60)
	}
	if s.spawnEvery != 90 {
		t.Errorf("spawn every %d ticks, expected 90", s.spawnEvery)
	}
	if !s.Running() {
		t.Error("new scheduler should be running")
	}
}

func TestAdvanceFiresWholeTicks(t *testing.T) {
	s := New(10*time.Millisecond, 100)
	target := &fakeTarget{}

	if res := s.Advance(9*time.Millisecond, target); res.Ticks != 0 {
		t.Errorf("9ms: %d ticks, expected 0", res.Ticks)
	}
	if res := s.Advance(1*time.Millisecond, target); res.Ticks != 1 {
		t.Errorf("accumulated 10ms: %d ticks, expected 1", res.Ticks)
	}
	if res := s.Advance(35*time.Millisecond, target); res.Ticks != 3 {
		t.Errorf("35ms: %d ticks, expected 3", res.Ticks)
	}
	if s.acc != 5*time.Millisecond {
		t.Errorf("leftover = %v, expected 5ms", s.acc)
	}
}

func TestAdvanceCatchUpLimit(t *testing.T) {
	s := New(10*time.Millisecond, 100)
	target := &fakeTarget{}

	res := s.Advance(time.Second, target)
	if res.Ticks != MaxCatchUp {
		t.Errorf("1s stall ran %d ticks, expected %d", res.Ticks, MaxCatchUp)
	}
	if s.acc >= s.tick {
		t.Errorf("backlog %v should be dropped", s.acc)
	}
}

func TestSpawnCadence(t *testing.T) {
	s := New(time.Millisecond, 3)
	target := &fakeTarget{}

	for i := 0; i < 7; i++ {
		s.Advance(time.Millisecond, target)
	}

	want := []string{"tick", "tick", "spawn", "tick", "tick", "tick", "spawn", "tick", "tick"}
	if len(target.calls) != len(want) {
		t.Fatalf("calls = %v, expected %v", target.calls, want)
	}
	for i := range want {
		if target.calls[i] != want[i] {
			t.Fatalf("calls = %v, expected %v", target.calls, want)
		}
	}
}

func TestFirstSpawnAfterOneInterval(t *testing.T) {
	cfg := config.Default()
	s := FromConfig(cfg)
	target := &fakeTarget{}

	spawns := 0
	for i := 0; i < 89; i++ {
		spawns += s.Advance(s.Interval(), target).Spawns
	}
	if spawns != 0 {
		t.Fatalf("no spawn expected before 1.5s, got %d", spawns)
	}
	if res := s.Advance(s.Interval(), target); res.Spawns != 1 {
		t.Errorf("tick 90 should spawn, got %d", res.Spawns)
	}
}

func TestStopsOnGameOver(t *testing.T) {
	s := New(time.Millisecond, 100)
	target := &fakeTarget{overAt: 2}

	res := s.Advance(4*time.Millisecond, target)
	if res.Ticks != 2 || !res.Stopped {
		t.Errorf("expected 2 ticks then stop, got %+v", res)
	}
	if s.Running() {
		t.Error("scheduler should stop after game over")
	}

	if res := s.Advance(time.Second, target); res.Ticks != 0 {
		t.Errorf("stopped scheduler fired %d ticks", res.Ticks)
	}

	target.overAt = 0
	s.Resume()
	if s.Ticks() != 0 || !s.Running() {
		t.Error("Resume should restart the timers from zero")
	}
	if res := s.Advance(time.Millisecond, target); res.Ticks != 1 {
		t.Errorf("resumed scheduler should tick, got %+v", res)
	}
}
