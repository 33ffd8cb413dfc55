// Package playback drives the animated traversal of a track and the
// one-shot photo presentation events along the way.
package playback

import "time"

// State of the animation driver.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "stopped"
	}
}

// Player advances a progress percentage over wall-clock time. Progress is
// always a pure function of the elapsed time since a virtual start instant,
// never stepped incrementally, so frame-rate variance cannot accumulate
// drift. Resume-from-position and seek-while-playing share the same
// virtual-start formula.
//
// Player is not goroutine safe; Session serializes access.
type Player struct {
	state        State
	progress     float64
	virtualStart time.Time
	duration     time.Duration
	now          func() time.Time
}

func NewPlayer(duration time.Duration) *Player {
	return NewPlayerWithClock(duration, time.Now)
}

func NewPlayerWithClock(duration time.Duration, now func() time.Time) *Player {
	if duration <= 0 {
		duration = 10 * time.Second
	}
	return &Player{duration: duration, now: now}
}

func (p *Player) State() State {
	return p.state
}

// Progress returns the current progress percentage. While playing it is
// recomputed from the clock, so readers between ticks see fresh values.
func (p *Player) Progress() float64 {
	if p.state != StatePlaying {
		return p.progress
	}
	return p.progressAt(p.now())
}

func (p *Player) progressAt(now time.Time) float64 {
	elapsed := now.Sub(p.virtualStart)
	progress := float64(elapsed) / float64(p.duration) * 100.0
	if progress > 100 {
		return 100
	}
	if progress < 0 {
		return 0
	}
	return progress
}

// Play transitions to Playing from Stopped or Paused. A finished
// playthrough restarts from the beginning.
func (p *Player) Play() {
	if p.state == StatePlaying {
		return
	}
	if p.state == StateStopped && p.progress >= 100 {
		p.progress = 0
	}
	p.virtualStart = p.virtualStartFor(p.progress)
	p.state = StatePlaying
}

func (p *Player) virtualStartFor(progress float64) time.Time {
	offset := time.Duration(progress / 100.0 * float64(p.duration))
	return p.now().Add(-offset)
}

// Tick materializes the clock-derived progress. It reports whether this
// tick completed the playthrough, in which case the player has stopped.
func (p *Player) Tick() (progress float64, finished bool) {
	if p.state != StatePlaying {
		return p.progress, false
	}

	p.progress = p.progressAt(p.now())

	if p.progress >= 100 {
		p.progress = 100
		p.state = StateStopped
		p.virtualStart = time.Time{}
		return p.progress, true
	}

	return p.progress, false
}

// Pause freezes the current progress and discards the virtual start.
func (p *Player) Pause() {
	if p.state != StatePlaying {
		return
	}
	p.progress = p.progressAt(p.now())
	p.state = StatePaused
	p.virtualStart = time.Time{}
}

// Seek jumps to the target percentage, clamped to [0, 100]. While playing
// the virtual start is recomputed so playback continues forward from the
// new position without a snap-back on the next tick.
func (p *Player) Seek(targetPercent float64) {
	if targetPercent < 0 {
		targetPercent = 0
	}
	if targetPercent > 100 {
		targetPercent = 100
	}

	p.progress = targetPercent

	if p.state == StatePlaying {
		p.virtualStart = p.virtualStartFor(targetPercent)
	}
}

// Reset returns to the initial state.
func (p *Player) Reset() {
	p.progress = 0
	p.state = StateStopped
	p.virtualStart = time.Time{}
}
