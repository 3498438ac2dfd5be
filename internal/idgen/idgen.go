// Package idgen provides the id suppliers a board can be built with.
package idgen

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/xid"
	"golang.org/x/xerrors"
)

// Supplier hands out record ids. It matches board.IDSupplier.
type Supplier interface {
	NextID() string
}

// Names of the suppliers accepted by New.
const (
	NameULID     = "ulid"
	NameXID      = "xid"
	NameSequence = "sequence"
	NameClock    = "clock"
)

// New returns the supplier registered under name.
func New(name string) (Supplier, error) {
	switch name {
	case NameULID:
		return NewULID(time.Now), nil
	case NameXID:
		return NewXID(), nil
	case NameSequence:
		return NewSequence(""), nil
	case NameClock:
		return NewClock(time.Now), nil
	}
	return nil, xerrors.Errorf("unknown id generator %q", name)
}

var _ Supplier = (*ULID)(nil)

// ULID generates lexically sortable ids. Ids generated within the same
// millisecond stay ordered through monotonic entropy.
type ULID struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy *ulid.MonotonicEntropy
}

// NewULID returns a ULID supplier reading time from now.
func NewULID(now func() time.Time) *ULID {
	seed := now().UnixNano()
	return &ULID{
		now:     now,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(seed)), 0),
	}
}

// NextID returns the next ULID in its canonical string form.
func (u *ULID) NextID() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(u.now()), u.entropy).String()
}

var _ Supplier = (*XID)(nil)

// XID generates globally unique ids with github.com/rs/xid.
type XID struct{}

// NewXID returns a new XID supplier.
func NewXID() *XID {
	return &XID{}
}

// NextID returns a fresh xid.
func (*XID) NextID() string {
	return xid.New().String()
}

var _ Supplier = (*Sequence)(nil)

// Sequence hands out prefix1, prefix2, ... and never repeats itself.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	n      uint64
}

// NewSequence returns a Sequence starting at 1.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NextID returns the next id of the sequence.
func (s *Sequence) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return s.prefix + strconv.FormatUint(s.n, 10)
}

var _ Supplier = (*Clock)(nil)

// Clock derives a six digit id from the wall clock milliseconds.
// Two calls in the same millisecond, or a million milliseconds apart,
// give the same id, so callers must be ready for duplicates.
type Clock struct {
	now func() time.Time
}

// NewClock returns a Clock supplier reading time from now.
func NewClock(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// NextID returns the current millisecond modulo one million, zero padded.
func (c *Clock) NextID() string {
	ms := c.now().UnixNano() / int64(time.Millisecond)
	return fmt.Sprintf("%06d", ms%1000000)
}
