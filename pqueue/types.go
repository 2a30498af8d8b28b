package pqueue

import "errors"

// ErrEmpty is returned by PopMin when the queue holds no entries at all,
// neither live nor dead. Consumers treat it as a normal termination signal.
var ErrEmpty = errors.New("pqueue: queue is empty")

// Handle identifies one queue entry. The zero Handle never refers to an entry
// and is used by edges that have not been pushed yet.
type Handle uint64

// None is the zero Handle.
const None Handle = 0

// newHandle packs slot and generation; slot is stored +1 so that slot 0 with
// generation 0 does not collide with None.
func newHandle(slot, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(slot+1))
}

// slot returns the side-table index and ok=false for None.
func (h Handle) slot() (uint32, bool) {
	low := uint32(uint64(h) & 0xffffffff)
	if low == 0 {
		return 0, false
	}

	return low - 1, true
}

func (h Handle) gen() uint32 { return uint32(uint64(h) >> 32) }

// Entry is one record of the queue: the weight an edge had when it was pushed,
// its endpoints, and the Handle under which it was issued.
type Entry struct {
	Weight float64 // edge weight at push time
	U, V   int     // edge endpoints as given to Push
	Handle Handle  // identity of this entry

	seq uint64 // insertion sequence, tie-breaker
}
