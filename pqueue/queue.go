package pqueue

import "container/heap"

// Queue is a min-heap of Entry records with an O(1) invalidation side-table.
// It is not safe for concurrent use; a contraction run owns its queue.
type Queue struct {
	items entryHeap // heap-ordered entries, dead ones included
	live  []bool    // live[slot] reports whether the entry in slot is valid
	gens  []uint32  // gens[slot] is the generation currently issued for slot
	free  []uint32  // recycled slots
	seq   uint64    // next insertion sequence number
	alive int       // number of valid entries
}

// New returns an empty Queue with room for capacity entries.
func New(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}
	q := &Queue{
		items: make(entryHeap, 0, capacity),
		live:  make([]bool, 0, capacity),
		gens:  make([]uint32, 0, capacity),
	}
	heap.Init(&q.items)

	return q
}

// Push inserts a valid entry for edge (u, v) with the given weight and returns
// its Handle.
// Complexity: O(log N).
func (q *Queue) Push(weight float64, u, v int) Handle {
	var slot uint32
	if n := len(q.free); n > 0 {
		slot = q.free[n-1]
		q.free = q.free[:n-1]
	} else {
		slot = uint32(len(q.live))
		q.live = append(q.live, false)
		q.gens = append(q.gens, 0)
	}
	q.live[slot] = true
	q.alive++

	h := newHandle(slot, q.gens[slot])
	heap.Push(&q.items, &Entry{Weight: weight, U: u, V: v, Handle: h, seq: q.seq})
	q.seq++

	return h
}

// PopMin removes the lightest entry and reports whether it was still valid.
// The entry's slot is recycled, so its Handle becomes inert from here on.
// Returns ErrEmpty when Len() == 0.
// Complexity: O(log N).
func (q *Queue) PopMin() (Entry, bool, error) {
	if q.items.Len() == 0 {
		return Entry{}, false, ErrEmpty
	}
	e := heap.Pop(&q.items).(*Entry)

	slot, _ := e.Handle.slot()
	valid := q.live[slot] && q.gens[slot] == e.Handle.gen()
	if valid {
		q.alive--
	}
	q.live[slot] = false
	q.gens[slot]++
	q.free = append(q.free, slot)

	return *e, valid, nil
}

// PeekMinWeight returns the weight of the lightest entry, live or dead.
// ok is false on an empty queue.
func (q *Queue) PeekMinWeight() (w float64, ok bool) {
	if q.items.Len() == 0 {
		return 0, false
	}

	return q.items[0].Weight, true
}

// Invalidate marks the entry behind h as dead. It reports whether a live
// entry was actually retired; None, stale and already-dead handles are no-ops.
// Complexity: O(1); the heap is not touched.
func (q *Queue) Invalidate(h Handle) bool {
	if !q.Valid(h) {
		return false
	}
	slot, _ := h.slot()
	q.live[slot] = false
	q.alive--

	return true
}

// Valid reports whether h refers to an entry that is still in the queue and
// has not been invalidated.
func (q *Queue) Valid(h Handle) bool {
	slot, ok := h.slot()
	if !ok || int(slot) >= len(q.live) {
		return false
	}

	return q.gens[slot] == h.gen() && q.live[slot]
}

// Len returns the number of entries held, dead ones included.
func (q *Queue) Len() int { return q.items.Len() }

// Live returns the number of valid entries.
func (q *Queue) Live() int { return q.alive }

// entryHeap is a container/heap of *Entry ordered by (Weight, seq).
type entryHeap []*Entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].Weight != h[j].Weight {
		return h[i].Weight < h[j].Weight
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be *Entry.
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(*Entry)) }

// Pop is called by heap.Pop.
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
