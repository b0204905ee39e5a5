// ABOUTME: Tri-state ellipsized tracker with ordered change listeners
// ABOUTME: Notifies on first report and on state flips, never on repeats

package ellipsize

import "errors"

// ErrNilListener is returned when a nil listener is registered.
var ErrNilListener = errors.New("ellipsize: listener must not be nil")

// Listener receives the new truncation state when it changes.
type Listener func(ellipsized bool)

type listenerEntry struct {
	id int
	fn Listener
}

// StateTracker remembers the last reported truncation state and notifies
// listeners exactly when that state changes. The state starts out unknown;
// the first Report always notifies.
//
// StateTracker is not safe for concurrent use: it belongs to the single
// thread that drives layout and rendering, like the rest of this package.
type StateTracker struct {
	listeners []listenerEntry
	nextID    int
	last      bool
	known     bool
}

// Add registers fn and returns a remove func. Removal is by identity of the
// registration: calling remove more than once, or after Reset, is a no-op.
// Listeners are invoked in registration order.
func (t *StateTracker) Add(fn Listener) (remove func(), err error) {
	if fn == nil {
		return nil, ErrNilListener
	}
	id := t.nextID
	t.nextID++
	t.listeners = append(t.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, e := range t.listeners {
			if e.id == id {
				t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
				return
			}
		}
	}, nil
}

// Report records the latest computed state. Listeners fire only when the
// value differs from the last report, or on the first report after
// construction or Reset.
func (t *StateTracker) Report(ellipsized bool) {
	if t.known && t.last == ellipsized {
		return
	}
	t.last = ellipsized
	t.known = true
	for _, e := range t.listeners {
		e.fn(ellipsized)
	}
}

// Last returns the last reported state. known is false until the first
// Report after construction or Reset.
func (t *StateTracker) Last() (ellipsized, known bool) {
	return t.last, t.known
}

// Reset clears the tracked state and drops all listeners, for hosts that
// recycle a display surface for unrelated content. The next Report is
// treated as a fresh first report.
func (t *StateTracker) Reset() {
	t.listeners = nil
	t.known = false
	t.last = false
}
