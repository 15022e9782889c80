package shell

// History is the command log of a session with Up/Down style navigation.
// The cursor may sit one past the newest entry, which stands for the line
// being edited.
type History struct {
	entries []string
	limit   int
	pos     int
}

// NewHistory creates a history keeping at most limit entries (0 = unbounded).
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Add appends line and moves the cursor past the newest entry.
func (h *History) Add(line string) {
	h.entries = append(h.entries, line)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	h.pos = len(h.entries)
}

// Prev moves towards older entries. ok is false when there is nothing older.
func (h *History) Prev() (line string, ok bool) {
	if len(h.entries) == 0 || h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Next moves towards newer entries. Stepping past the newest entry returns
// an empty line; ok is false once the cursor is already there.
func (h *History) Next() (line string, ok bool) {
	switch {
	case h.pos < len(h.entries)-1:
		h.pos++
		return h.entries[h.pos], true
	case h.pos == len(h.entries)-1:
		h.pos++
		return "", true
	default:
		return "", false
	}
}

// Entries returns a copy of the log, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }
