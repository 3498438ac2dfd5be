package board

// Error provides constant error strings to the driver functions.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrNotFound    = Error("record doesn't exist in the board")
	ErrEmptyQueue  = Error("event queue is empty")
	ErrDuplicateID = Error("record id already exists in the board")
	ErrInvalidID   = Error("record id is empty")
	ErrUnknownKind = Error("unknown record kind")
)
