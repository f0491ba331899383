// Package history tracks navigation entries so closing the viewer can
// behave like the platform back action instead of a hard exit.
package history

// Entry is one navigation state. Route names the screen; Param carries
// the route argument (artifact ID for the viewer route).
type Entry struct {
	Route string
	Param string
}

const (
	RouteGallery = "gallery"
	RouteViewer  = "viewer"
)

// Stack is a linear navigation history. The zero value is an empty
// stack. It is not safe for concurrent use; the event loop owns it.
type Stack struct {
	entries []Entry
}

// Push appends a new entry, making it current.
func (s *Stack) Push(e Entry) {
	s.entries = append(s.entries, e)
}

// Replace swaps the current entry without growing the stack. On an
// empty stack it behaves like Push. Viewer prev/next navigation uses
// this so stepping through twenty artifacts takes one back press to
// leave, not twenty.
func (s *Stack) Replace(e Entry) {
	if len(s.entries) == 0 {
		s.entries = append(s.entries, e)
		return
	}
	s.entries[len(s.entries)-1] = e
}

// Back pops the current entry and returns the one beneath it. ok is
// false when there is nothing to go back to; the stack is left with
// its last entry intact in that case.
func (s *Stack) Back() (Entry, bool) {
	if len(s.entries) < 2 {
		return Entry{}, false
	}
	s.entries = s.entries[:len(s.entries)-1]
	return s.entries[len(s.entries)-1], true
}

// Current returns the top entry.
func (s *Stack) Current() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Depth returns the number of entries.
func (s *Stack) Depth() int {
	return len(s.entries)
}
