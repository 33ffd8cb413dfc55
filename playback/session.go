package playback

import (
	"errors"
	"sync"
	"time"

	"gitlab.com/begraf/trailplay/photo"
	"gitlab.com/begraf/trailplay/track"
)

// ErrNoTrack is returned when playback is requested before a track with a
// usable progress axis has been loaded.
var ErrNoTrack = errors.New("no track loaded")

// Config carries the playback tuning knobs. Zero values fall back to the
// application defaults.
type Config struct {
	Duration     time.Duration // full 0-100% traversal
	Tolerance    float64       // photo trigger band in percentage points
	DisplayTime  time.Duration // photo presentation before auto-resume
	TickInterval time.Duration // frame cadence
	Clock        func() time.Time
}

// Status is the consumer view of a session at one instant.
type Status struct {
	State     string          `json:"state"`
	Progress  float64         `json:"progress"`
	HasTrack  bool            `json:"hasTrack"`
	TrackName string          `json:"trackName,omitempty"`
	Pending   *photo.Position `json:"pendingPhoto,omitempty"`
}

// Session owns one track's playback: the player, the derived photo
// positions, the trigger engine and the frame loop. All mutations funnel
// through the session so HTTP handlers on other goroutines stay
// consistent. Loading a new track replaces the whole state atomically from
// the consumer's point of view.
type Session struct {
	mu sync.Mutex

	trackName string
	points    []track.Point
	anchors   []photo.Anchor
	positions []photo.Position

	player *Player
	engine *triggerEngine

	displayTime  time.Duration
	tickInterval time.Duration

	pending     *photo.Position
	resumeTimer *time.Timer
	stopTicker  chan struct{}

	// generation guards delayed callbacks: a resume armed before a reset
	// or track replacement must not resurrect the old state.
	generation int

	onPhoto func(photo.Position)
}

func NewSession(cfg Config) *Session {
	if cfg.Duration <= 0 {
		cfg.Duration = 10 * time.Second
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = 1.0
	}
	if cfg.DisplayTime <= 0 {
		cfg.DisplayTime = 3 * time.Second
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 33 * time.Millisecond
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Session{
		player:       NewPlayerWithClock(cfg.Duration, clock),
		engine:       newTriggerEngine(cfg.Tolerance),
		displayTime:  cfg.DisplayTime,
		tickInterval: cfg.TickInterval,
	}
}

// SetPhotoCallback installs a hook fired on every photo trigger. The
// callback runs with the session locked and must not call back into it.
func (s *Session) SetPhotoCallback(fn func(photo.Position)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onPhoto = fn
}

// ReplaceTrack installs a new track and discards all per-session state:
// anchors, derived positions, shown photos, pending presentations and the
// running frame loop.
func (s *Session) ReplaceTrack(t *track.Track) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.cancelPendingLocked()
	s.haltTickerLocked()

	s.trackName = t.Name
	s.points = t.Points
	s.anchors = nil
	s.positions = nil

	s.player.Reset()
	s.engine.reset()
	s.engine.setPositions(nil)
}

// AddAnchor appends a photo anchor and re-derives the position list.
func (s *Session) AddAnchor(a photo.Anchor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.anchors = append(s.anchors, a)
	s.positions = photo.DerivePositions(s.points, s.anchors)
	s.engine.setPositions(s.positions)
}

// SetAnchors replaces the anchor collection wholesale, as when a tour
// document preloads its photos.
func (s *Session) SetAnchors(anchors []photo.Anchor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.anchors = anchors
	s.positions = photo.DerivePositions(s.points, s.anchors)
	s.engine.setPositions(s.positions)
}

func (s *Session) Anchors() []photo.Anchor {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]photo.Anchor, len(s.anchors))
	copy(out, s.anchors)
	return out
}

func (s *Session) Positions() []photo.Position {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]photo.Position, len(s.positions))
	copy(out, s.positions)
	return out
}

// Points returns the playback track's points.
func (s *Session) Points() []track.Point {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]track.Point, len(s.points))
	copy(out, s.points)
	return out
}

// Play starts or resumes the traversal. Any pending photo presentation is
// dismissed; explicit user input overrides the auto-resume delay.
func (s *Session) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.points) < 2 {
		return ErrNoTrack
	}
	if s.player.State() == StatePlaying {
		return nil
	}

	s.cancelPendingLocked()
	s.player.Play()
	s.startTickerLocked()

	return nil
}

func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelPendingLocked()
	s.haltTickerLocked()
	s.player.Pause()
}

func (s *Session) Seek(targetPercent float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelPendingLocked()
	s.player.Seek(targetPercent)
}

// Reset returns to progress zero and clears the shown-photo set, making
// every anchor eligible again.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.cancelPendingLocked()
	s.haltTickerLocked()
	s.player.Reset()
	s.engine.reset()
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		State:     s.player.State().String(),
		Progress:  s.player.Progress(),
		HasTrack:  len(s.points) >= 2,
		TrackName: s.trackName,
	}

	if s.pending != nil {
		pending := *s.pending
		st.Pending = &pending
	}

	return st
}

// tick services one frame. It reports whether the frame loop should keep
// running; pausing for a photo or finishing the traversal ends the loop.
func (s *Session) tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.player.State() != StatePlaying {
		return false
	}

	progress, finished := s.player.Tick()

	if pos, ok := s.engine.match(progress); ok {
		// A no-op when this tick finished the traversal; the player then
		// stays stopped at 100% behind the presentation.
		s.player.Pause()

		pending := pos
		s.pending = &pending

		gen := s.generation
		s.resumeTimer = time.AfterFunc(s.displayTime, func() {
			s.resumeAfterPhoto(gen)
		})

		if s.onPhoto != nil {
			s.onPhoto(pos)
		}

		return false
	}

	return !finished
}

// resumeAfterPhoto closes the photo presentation and resumes playback,
// unless the session has been reset or reloaded in the meantime.
func (s *Session) resumeAfterPhoto(gen int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || s.pending == nil {
		return
	}

	s.pending = nil
	s.resumeTimer = nil

	if len(s.points) < 2 {
		return
	}

	// An anchor at the final point presents after the traversal has
	// completed; dismissing it must not start a new playthrough.
	if s.player.State() == StateStopped && s.player.Progress() >= 100 {
		return
	}

	s.player.Play()
	s.startTickerLocked()
}

func (s *Session) cancelPendingLocked() {
	if s.resumeTimer != nil {
		s.resumeTimer.Stop()
		s.resumeTimer = nil
	}
	s.pending = nil
}

func (s *Session) startTickerLocked() {
	s.haltTickerLocked()

	stop := make(chan struct{})
	s.stopTicker = stop

	interval := s.tickInterval

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if !s.tick() {
					return
				}
			}
		}
	}()
}

func (s *Session) haltTickerLocked() {
	if s.stopTicker != nil {
		close(s.stopTicker)
		s.stopTicker = nil
	}
}
