package playback

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2021, 6, 5, 8, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestPlayerInitialState(t *testing.T) {
	p := NewPlayer(10 * time.Second)
	if p.State() != StateStopped {
		t.Errorf("expected stopped, got %v", p.State())
	}
	if p.Progress() != 0 {
		t.Errorf("expected progress 0, got %v", p.Progress())
	}
}

func TestPlayerTickDerivesProgressFromClock(t *testing.T) {
	clock := newFakeClock()
	p := NewPlayerWithClock(10*time.Second, clock.now)

	p.Play()

	clock.advance(5 * time.Second)
	progress, finished := p.Tick()
	if finished {
		t.Fatal("playthrough should not be finished at 50%")
	}
	if progress != 50 {
		t.Errorf("expected 50%%, got %v", progress)
	}
}

func TestPlayerStopsAtFullProgress(t *testing.T) {
	clock := newFakeClock()
	p := NewPlayerWithClock(10*time.Second, clock.now)

	p.Play()
	clock.advance(12 * time.Second)

	progress, finished := p.Tick()
	if !finished {
		t.Fatal("expected finished playthrough")
	}
	if progress != 100 {
		t.Errorf("expected clamped 100%%, got %v", progress)
	}
	if p.State() != StateStopped {
		t.Errorf("expected stopped after finish, got %v", p.State())
	}
}

func TestPlayerPauseAndResume(t *testing.T) {
	clock := newFakeClock()
	p := NewPlayerWithClock(10*time.Second, clock.now)

	p.Play()
	clock.advance(3 * time.Second)
	p.Tick()
	p.Pause()

	if p.State() != StatePaused {
		t.Fatalf("expected paused, got %v", p.State())
	}

	// Time passing while paused must not move progress.
	clock.advance(1 * time.Minute)
	if p.Progress() != 30 {
		t.Errorf("paused progress drifted to %v", p.Progress())
	}

	// Resume continues from the frozen position.
	p.Play()
	clock.advance(2 * time.Second)
	progress, _ := p.Tick()
	if progress != 50 {
		t.Errorf("expected 50%% after resume, got %v", progress)
	}
}

func TestPlayerSeekWhilePlayingContinuesForward(t *testing.T) {
	clock := newFakeClock()
	p := NewPlayerWithClock(10*time.Second, clock.now)

	p.Play()
	clock.advance(2 * time.Second)
	p.Tick()

	p.Seek(80)
	clock.advance(1 * time.Second)

	progress, _ := p.Tick()
	if progress != 90 {
		t.Errorf("expected 90%% one second after seeking to 80%%, got %v", progress)
	}
}

func TestPlayerSeekClamps(t *testing.T) {
	p := NewPlayer(10 * time.Second)

	p.Seek(-10)
	if p.Progress() != 0 {
		t.Errorf("expected clamp to 0, got %v", p.Progress())
	}

	p.Seek(140)
	if p.Progress() != 100 {
		t.Errorf("expected clamp to 100, got %v", p.Progress())
	}
}

func TestPlayerReset(t *testing.T) {
	clock := newFakeClock()
	p := NewPlayerWithClock(10*time.Second, clock.now)

	p.Play()
	clock.advance(4 * time.Second)
	p.Tick()
	p.Reset()

	if p.State() != StateStopped || p.Progress() != 0 {
		t.Errorf("reset left state %v at %v%%", p.State(), p.Progress())
	}
}

func TestPlayerReplayAfterFinish(t *testing.T) {
	clock := newFakeClock()
	p := NewPlayerWithClock(10*time.Second, clock.now)

	p.Play()
	clock.advance(11 * time.Second)
	p.Tick()

	// A finished playthrough restarts from the beginning.
	p.Play()
	clock.advance(1 * time.Second)
	progress, _ := p.Tick()
	if progress != 10 {
		t.Errorf("expected fresh playthrough at 10%%, got %v", progress)
	}
}
