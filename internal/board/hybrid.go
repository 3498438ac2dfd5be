package board

import (
	"iter"

	"golang.org/x/xerrors"
)

// IDSupplier hands out identifiers for new records. Suppliers should not
// repeat an id that is still live in the structure; when they do, the
// insertion fails with ErrDuplicateID and the caller decides whether to retry.
type IDSupplier interface {
	NextID() string
}

// HybridStructure keeps announcements and events in a single doubly linked
// list and, on top of it, treats the event records as a FIFO queue.
//
// The queue view is delimited by eventFront and eventRear, the first and the
// last event in list order. Events are only ever appended at the tail, so list
// order among events equals the order they were enqueued in. Every mutating
// operation either succeeds with both views consistent or changes nothing.
//
// A HybridStructure is not safe for concurrent use.
type HybridStructure struct {
	list  *arenaList
	index map[string]handle
	ids   IDSupplier

	eventFront handle
	eventRear  handle
	events     int
}

// NewHybridStructure returns an empty structure that takes record ids from ids.
func NewHybridStructure(ids IDSupplier) *HybridStructure {
	return &HybridStructure{
		list:       newArenaList(),
		index:      make(map[string]handle),
		ids:        ids,
		eventFront: nilHandle,
		eventRear:  nilHandle,
	}
}

// Insert appends a new record of the given kind at the tail of the list and
// returns the id assigned to it.
//
// A new event always becomes the rear of the queue, and also its front
// when there were no events before.
func (hs *HybridStructure) Insert(kind Kind, title, date, author string) (string, error) {
	if !kind.Valid() {
		return "", ErrUnknownKind
	}

	id := hs.ids.NextID()
	if id == "" {
		return "", ErrInvalidID
	}
	if _, ok := hs.index[id]; ok {
		return "", ErrDuplicateID
	}

	wasEmpty := hs.list.size == 0
	h := hs.list.pushBack(Record{
		ID:     id,
		Kind:   kind,
		Title:  title,
		Date:   date,
		Author: author,
	})
	hs.index[id] = h

	if kind == Event {
		if wasEmpty || hs.eventFront == nilHandle {
			hs.eventFront = h
		}
		hs.eventRear = h
		hs.events++
	}
	return id, nil
}

// RemoveByID unlinks the record with the given id and returns it.
//
// If the record was the front or the rear of the event queue, the stale
// pointer is moved to the nearest remaining event in the same direction.
func (hs *HybridStructure) RemoveByID(id string) (Record, error) {
	h, ok := hs.index[id]
	if !ok {
		return Record{}, ErrNotFound
	}

	if hs.list.record(h).IsEvent() {
		switch {
		case h == hs.eventFront && h == hs.eventRear:
			hs.eventFront = nilHandle
			hs.eventRear = nilHandle
		case h == hs.eventFront:
			hs.eventFront = hs.nextEvent(hs.list.next(h))
		case h == hs.eventRear:
			hs.eventRear = hs.prevEvent(hs.list.prev(h))
		}
		hs.events--
	}

	delete(hs.index, id)
	return hs.list.unlink(h), nil
}

// FindByID returns a copy of the record with the given id.
func (hs *HybridStructure) FindByID(id string) (Record, error) {
	h, ok := hs.index[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return *hs.list.record(h), nil
}

// Update overwrites the title and date of the record with the given id and
// returns the updated copy. Kind and id never change after insertion.
func (hs *HybridStructure) Update(id, title, date string) (Record, error) {
	h, ok := hs.index[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	rec := hs.list.record(h)
	rec.Title = title
	rec.Date = date
	return *rec, nil
}

// ListAll returns the records in list order, head to tail. The sequence
// may be ranged over any number of times; the structure must not be
// mutated while a range over it is in progress.
func (hs *HybridStructure) ListAll() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for h := hs.list.head; h != nilHandle; h = hs.list.next(h) {
			if !yield(*hs.list.record(h)) {
				return
			}
		}
	}
}

// EnqueueEvent adds an event at the rear of the queue.
func (hs *HybridStructure) EnqueueEvent(title, date, author string) (string, error) {
	return hs.Insert(Event, title, date, author)
}

// DequeueEvent removes the front event and returns it.
func (hs *HybridStructure) DequeueEvent() (Record, error) {
	if hs.eventFront == nilHandle {
		return Record{}, ErrEmptyQueue
	}

	target := hs.eventFront
	hs.eventFront = hs.nextEvent(hs.list.next(target))
	if target == hs.eventRear {
		hs.eventRear = nilHandle
	}
	hs.events--

	rec := hs.list.unlink(target)
	delete(hs.index, rec.ID)
	return rec, nil
}

// PeekEvent returns a copy of the front event without removing it.
func (hs *HybridStructure) PeekEvent() (Record, error) {
	if hs.eventFront == nilHandle {
		return Record{}, ErrEmptyQueue
	}
	return *hs.list.record(hs.eventFront), nil
}

// ListEvents returns the events in queue order, front to rear.
func (hs *HybridStructure) ListEvents() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		if hs.eventFront == nilHandle {
			return
		}
		for h := hs.eventFront; h != nilHandle; h = hs.list.next(h) {
			rec := hs.list.record(h)
			if rec.IsEvent() && !yield(*rec) {
				return
			}
			if h == hs.eventRear {
				return
			}
		}
	}
}

// Len returns the number of records in the structure.
func (hs *HybridStructure) Len() int {
	return hs.list.size
}

// CountEvents returns the number of events in the queue view.
func (hs *HybridStructure) CountEvents() int {
	return hs.events
}

// Clear drops every record.
func (hs *HybridStructure) Clear() {
	hs.list.reset()
	hs.index = make(map[string]handle)
	hs.eventFront = nilHandle
	hs.eventRear = nilHandle
	hs.events = 0
}

// nextEvent scans forward from h, inclusive, for the first event.
func (hs *HybridStructure) nextEvent(h handle) handle {
	for h != nilHandle && !hs.list.record(h).IsEvent() {
		h = hs.list.next(h)
	}
	return h
}

// prevEvent scans backward from h, inclusive, for the first event.
func (hs *HybridStructure) prevEvent(h handle) handle {
	for h != nilHandle && !hs.list.record(h).IsEvent() {
		h = hs.list.prev(h)
	}
	return h
}

// Check walks the whole structure and reports the first broken invariant.
func (hs *HybridStructure) Check() error {
	l := hs.list

	var forward []handle
	for h := l.head; h != nilHandle; h = l.next(h) {
		if len(forward) > l.size {
			return xerrors.Errorf("forward walk exceeds size %d", l.size)
		}
		forward = append(forward, h)
	}
	if len(forward) != l.size {
		return xerrors.Errorf("forward walk found %d nodes, size is %d", len(forward), l.size)
	}

	i := len(forward) - 1
	for h := l.tail; h != nilHandle; h = l.prev(h) {
		if i < 0 || forward[i] != h {
			return xerrors.Errorf("backward walk diverges from forward walk at position %d", i)
		}
		i--
	}
	if i != -1 {
		return xerrors.Errorf("backward walk stopped early at position %d", i)
	}

	if len(hs.index) != l.size {
		return xerrors.Errorf("index holds %d ids, list holds %d records", len(hs.index), l.size)
	}

	firstEvent, lastEvent := nilHandle, nilHandle
	events := 0
	for _, h := range forward {
		rec := l.record(h)
		if ih, ok := hs.index[rec.ID]; !ok || ih != h {
			return xerrors.Errorf("id %q is not indexed to its node", rec.ID)
		}
		if rec.IsEvent() {
			if firstEvent == nilHandle {
				firstEvent = h
			}
			lastEvent = h
			events++
		}
	}

	if hs.eventFront != firstEvent {
		return xerrors.Errorf("event front is %d, first event is at %d", hs.eventFront, firstEvent)
	}
	if hs.eventRear != lastEvent {
		return xerrors.Errorf("event rear is %d, last event is at %d", hs.eventRear, lastEvent)
	}
	if hs.events != events {
		return xerrors.Errorf("event count is %d, list holds %d events", hs.events, events)
	}
	return nil
}
