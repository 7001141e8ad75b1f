package route

// Location is the store that owns the current location path. Navigation code
// reads from it and pushes to it but never keeps its own copy of the path.
type Location interface {
	Path() string
	Push(path string, s State)
}

// Synchronize records s in loc as a new, non-navigating history entry.
// Callers must not use it after consuming a back/forward signal.
func Synchronize(loc Location, s State) {
	if loc == nil {
		return
	}
	loc.Push(Encode(s), s)
}

// Entry is a single history record.
type Entry struct {
	Path  string
	State State
}

// History is an in-memory location store with browser history semantics.
// It is not safe for concurrent use; the UI loop owns it.
type History struct {
	entries []Entry
	cursor  int
	pushes  int
}

var _ Location = (*History)(nil)

// NewHistory returns a history positioned at initial. The seed entry is not
// counted as a push.
func NewHistory(initial string) *History {
	if initial == "" {
		initial = "/"
	}
	return &History{
		entries: []Entry{{Path: initial, State: Decode(initial)}},
	}
}

// Path returns the current location path.
func (h *History) Path() string {
	return h.entries[h.cursor].Path
}

// Current returns the current entry.
func (h *History) Current() Entry {
	return h.entries[h.cursor]
}

// Push appends a new entry after the cursor, discarding forward entries.
func (h *History) Push(path string, s State) {
	h.entries = append(h.entries[:h.cursor+1], Entry{Path: path, State: s})
	h.cursor = len(h.entries) - 1
	h.pushes++
}

// Back moves to the previous entry and reports whether it moved.
func (h *History) Back() bool {
	if h.cursor == 0 {
		return false
	}
	h.cursor--
	return true
}

// Forward moves to the next entry and reports whether it moved.
func (h *History) Forward() bool {
	if h.cursor >= len(h.entries)-1 {
		return false
	}
	h.cursor++
	return true
}

// CanBack reports whether Back would move.
func (h *History) CanBack() bool { return h.cursor > 0 }

// CanForward reports whether Forward would move.
func (h *History) CanForward() bool { return h.cursor < len(h.entries)-1 }

// Len returns the number of entries in the stack.
func (h *History) Len() int { return len(h.entries) }

// Pushes returns how many times Push has been called.
func (h *History) Pushes() int { return h.pushes }
