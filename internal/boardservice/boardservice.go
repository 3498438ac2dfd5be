package boardservice

import (
	"slices"
	"sync"

	"github.com/SystemBuilders/noticeboard/internal/board"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

// DefaultMaxIDAttempts is the number of ids tried per insertion before
// ErrDuplicateID is handed back to the caller.
const DefaultMaxIDAttempts = 3

// Board describes the notice board operations offered to the outer
// surfaces. Every call is a single atomic step on the underlying structure.
type Board interface {
	// Add inserts a record of the given kind and returns it.
	Add(kind board.Kind, title, date, author string) (board.Record, error)
	// Remove deletes the record with the given id and returns it.
	Remove(id string) (board.Record, error)
	// Find returns the record with the given id.
	Find(id string) (board.Record, error)
	// Update overwrites the title and date of the record with the given id.
	Update(id, title, date string) (board.Record, error)
	// All returns every record in list order.
	All() []board.Record
	// EnqueueEvent adds an event at the rear of the event queue.
	EnqueueEvent(title, date, author string) (board.Record, error)
	// DequeueEvent removes and returns the front event.
	DequeueEvent() (board.Record, error)
	// PeekEvent returns the front event without removing it.
	PeekEvent() (board.Record, error)
	// Events returns the events in queue order.
	Events() []board.Record
}

var _ Board = (*SafeBoard)(nil)

// SafeBoard serializes all access to a HybridStructure with a single
// mutex and logs every mutation at debug level.
type SafeBoard struct {
	log           zerolog.Logger
	maxIDAttempts int

	mu sync.Mutex
	hs *board.HybridStructure
}

// Option configures a SafeBoard.
type Option func(*SafeBoard)

// WithMaxIDAttempts sets how many ids are tried per insertion.
func WithMaxIDAttempts(n int) Option {
	return func(sb *SafeBoard) {
		if n > 0 {
			sb.maxIDAttempts = n
		}
	}
}

// NewSafeBoard creates and returns a new board ready to use.
func NewSafeBoard(log zerolog.Logger, ids board.IDSupplier, opts ...Option) *SafeBoard {
	sb := &SafeBoard{
		log:           log,
		maxIDAttempts: DefaultMaxIDAttempts,
		hs:            board.NewHybridStructure(ids),
	}
	for _, opt := range opts {
		opt(sb)
	}
	return sb
}

// Add inserts a record, drawing a new id when the supplier collides.
func (sb *SafeBoard) Add(kind board.Kind, title, date, author string) (board.Record, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	var err error
	for attempt := 1; attempt <= sb.maxIDAttempts; attempt++ {
		var id string
		id, err = sb.hs.Insert(kind, title, date, author)
		if err == nil {
			sb.
				log.
				Debug().
				Str("id", id).
				Str("kind", string(kind)).
				Msg("added")
			return sb.hs.FindByID(id)
		}
		if !xerrors.Is(err, board.ErrDuplicateID) {
			break
		}
		sb.
			log.
			Debug().
			Int("attempt", attempt).
			Msg("id collision, retrying")
	}

	sb.
		log.
		Debug().
		Err(err).
		Str("kind", string(kind)).
		Msg("can't add")
	if xerrors.Is(err, board.ErrDuplicateID) {
		return board.Record{}, xerrors.Errorf("after %d attempts: %w", sb.maxIDAttempts, err)
	}
	return board.Record{}, err
}

// Remove deletes the record with the given id.
func (sb *SafeBoard) Remove(id string) (board.Record, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	rec, err := sb.hs.RemoveByID(id)
	if err != nil {
		sb.
			log.
			Debug().
			Str("id", id).
			Msg("can't remove, doesn't exist")
		return board.Record{}, err
	}
	sb.
		log.
		Debug().
		Str("id", id).
		Str("kind", string(rec.Kind)).
		Msg("removed")
	return rec, nil
}

// Find returns the record with the given id.
func (sb *SafeBoard) Find(id string) (board.Record, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.hs.FindByID(id)
}

// Update overwrites the title and date of a record.
func (sb *SafeBoard) Update(id, title, date string) (board.Record, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	rec, err := sb.hs.Update(id, title, date)
	if err != nil {
		sb.
			log.
			Debug().
			Str("id", id).
			Msg("can't update, doesn't exist")
		return board.Record{}, err
	}
	sb.
		log.
		Debug().
		Str("id", id).
		Msg("updated")
	return rec, nil
}

// All returns a copy of every record in list order.
func (sb *SafeBoard) All() []board.Record {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return slices.AppendSeq([]board.Record{}, sb.hs.ListAll())
}

// EnqueueEvent adds an event at the rear of the queue.
func (sb *SafeBoard) EnqueueEvent(title, date, author string) (board.Record, error) {
	return sb.Add(board.Event, title, date, author)
}

// DequeueEvent removes and returns the front event.
func (sb *SafeBoard) DequeueEvent() (board.Record, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	rec, err := sb.hs.DequeueEvent()
	if err != nil {
		sb.
			log.
			Debug().
			Msg("can't dequeue, event queue is empty")
		return board.Record{}, err
	}
	sb.
		log.
		Debug().
		Str("id", rec.ID).
		Msg("dequeued")
	return rec, nil
}

// PeekEvent returns the front event.
func (sb *SafeBoard) PeekEvent() (board.Record, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.hs.PeekEvent()
}

// Events returns a copy of the event queue, front to rear.
func (sb *SafeBoard) Events() []board.Record {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return slices.AppendSeq([]board.Record{}, sb.hs.ListEvents())
}

// Len returns the number of records on the board.
func (sb *SafeBoard) Len() int {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.hs.Len()
}

// Clear drops every record on the board.
func (sb *SafeBoard) Clear() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.hs.Clear()
	sb.
		log.
		Debug().
		Msg("cleared")
}
