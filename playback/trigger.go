package playback

import "gitlab.com/begraf/trailplay/photo"

// triggerEngine decides when the animation has reached a photo anchor that
// has not been shown this session. Anchors are matched in ascending
// progress order and at most one fires per tick; when several unshown
// anchors share one tolerance band the later ones are skipped, matching
// the single-fire-per-tick contract.
type triggerEngine struct {
	tolerance float64
	positions []photo.Position
	shown     map[string]bool
}

func newTriggerEngine(tolerance float64) *triggerEngine {
	return &triggerEngine{
		tolerance: tolerance,
		shown:     make(map[string]bool),
	}
}

// setPositions installs a freshly derived position list. The shown set is
// kept: re-deriving positions after adding an anchor must not resurrect
// already-shown photos.
func (e *triggerEngine) setPositions(positions []photo.Position) {
	e.positions = positions
}

// reset clears the shown set for a new playthrough.
func (e *triggerEngine) reset() {
	e.shown = make(map[string]bool)
}

// match returns the first unshown anchor whose tolerance band contains
// progress, and marks it shown. Every other unshown anchor inside the same
// band is consumed as well: co-located anchors are skipped instead of
// queued. Marking here makes the one-shot guarantee independent of what
// the caller does with the event.
func (e *triggerEngine) match(progress float64) (photo.Position, bool) {
	var (
		fired photo.Position
		ok    bool
	)

	for _, pos := range e.positions {
		if e.shown[pos.Anchor.ID] {
			continue
		}
		if progress < pos.ProgressPercent-e.tolerance {
			// Positions are sorted ascending; everything further
			// is still ahead of the marker.
			break
		}
		if progress > pos.ProgressPercent+e.tolerance {
			continue
		}

		e.shown[pos.Anchor.ID] = true
		if !ok {
			fired = pos
			ok = true
		}
	}

	return fired, ok
}
