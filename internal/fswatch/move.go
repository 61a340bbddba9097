package fswatch

import "time"

// moveTracker holds at most one pending rename awaiting its create half.
type moveTracker struct {
	window time.Duration
	clock  func() time.Time

	path     string
	deadline time.Time
}

func newMoveTracker(window time.Duration) *moveTracker {
	return &moveTracker{window: window, clock: time.Now}
}

// note records a rename. If an earlier rename was still pending, its path is
// returned so the caller can report it as deleted.
func (t *moveTracker) note(path string, now time.Time) (stale string, had bool) {
	stale, had = t.path, t.path != ""
	t.path = path
	t.deadline = now.Add(t.window)
	return stale, had
}

// claim pairs a create with the pending rename, if one is still fresh.
func (t *moveTracker) claim(now time.Time) (src string, ok bool) {
	if t.path == "" || now.After(t.deadline) {
		return "", false
	}
	src = t.path
	t.path = ""
	return src, true
}

// expire drops a pending rename whose window has passed, returning its path.
func (t *moveTracker) expire(now time.Time) (path string, ok bool) {
	if t.path == "" || !now.After(t.deadline) {
		return "", false
	}
	path = t.path
	t.path = ""
	return path, true
}

// active reports whether a rename is waiting.
func (t *moveTracker) active() bool { return t.path != "" }

// remaining is the time left before the pending rename expires.
func (t *moveTracker) remaining(now time.Time) time.Duration {
	d := t.deadline.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
