package board

import "strings"

// Kind discriminates the records stored in a HybridStructure.
type Kind string

// These are the kinds of records known to the board.
const (
	Announcement Kind = "announcement"
	Event        Kind = "event"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case Announcement, Event:
		return true
	}
	return false
}

// ParseKind maps user supplied text onto a Kind. Matching ignores case and
// surrounding whitespace.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", ErrUnknownKind
	}
	return k, nil
}

// Record is a single entry on the board. Values handed out by the
// HybridStructure are copies and carry no links into the list.
type Record struct {
	ID     string `json:"id"`
	Kind   Kind   `json:"kind"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	Author string `json:"author"`
}

// IsEvent reports whether the record belongs to the event queue view.
func (r Record) IsEvent() bool {
	return r.Kind == Event
}
