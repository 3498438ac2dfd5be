package board

// handle is the slot index of a node inside an arenaList.
type handle int

const nilHandle handle = -1

// node is the single entity of the doubly linked list.
type node struct {
	rec  Record
	prev handle
	next handle
}

// arenaList is a doubly linked list whose nodes live in a slice and point
// at each other by slot index instead of by pointer.
//
// All nodes have a prev and a next link except the head and the tail node.
// Slots of unlinked nodes are kept on a free list and reused by pushBack.
type arenaList struct {
	nodes []node
	free  []handle
	head  handle
	tail  handle
	size  int
}

// newArenaList returns a new instance of an empty arenaList.
func newArenaList() *arenaList {
	return &arenaList{
		head: nilHandle,
		tail: nilHandle,
	}
}

func (l *arenaList) record(h handle) *Record {
	return &l.nodes[h].rec
}

func (l *arenaList) next(h handle) handle {
	return l.nodes[h].next
}

func (l *arenaList) prev(h handle) handle {
	return l.nodes[h].prev
}

// pushBack links a node holding rec after the current tail and returns its handle.
func (l *arenaList) pushBack(rec Record) handle {
	n := node{
		rec:  rec,
		prev: l.tail,
		next: nilHandle,
	}

	var h handle
	if last := len(l.free) - 1; last >= 0 {
		h = l.free[last]
		l.free = l.free[:last]
		l.nodes[h] = n
	} else {
		h = handle(len(l.nodes))
		l.nodes = append(l.nodes, n)
	}

	if l.tail == nilHandle {
		// The list was empty before, so this is the head node too.
		l.head = h
	} else {
		l.nodes[l.tail].next = h
	}
	l.tail = h
	l.size++
	return h
}

// unlink removes the node from the list, fixing head and tail when the node
// was an end, and returns the record it held.
func (l *arenaList) unlink(h handle) Record {
	n := l.nodes[h]

	if n.prev != nilHandle {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nilHandle {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}

	l.nodes[h] = node{prev: nilHandle, next: nilHandle}
	l.free = append(l.free, h)
	l.size--
	return n.rec
}

// reset drops every node.
func (l *arenaList) reset() {
	l.nodes = nil
	l.free = nil
	l.head = nilHandle
	l.tail = nilHandle
	l.size = 0
}
