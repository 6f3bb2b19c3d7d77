package go_diveknn

// Collector gathers the closest neighbours offered during one query.
// A Collector is scratch state: it is not safe for concurrent use and
// must be Reset before it is reused for another query.
type Collector interface {
	// Reset discards every resident neighbour.
	Reset()
	// Offer folds a candidate in and reports whether it was kept.
	Offer(n Neighbour) bool
	// Neighbours returns the residents sorted by ascending distance and
	// leaves them resident.
	Neighbours() []Neighbour
}

// CollectorFactory builds a Collector with capacity k.
type CollectorFactory func(k int) Collector

// NeighbourSet is a bounded, ascending list of the k closest neighbours.
//
// Insertion is a stable bounded insertion sort: a candidate only displaces
// residents with a strictly greater distance, so among equal distances the
// one offered first stays ahead. Filled slots always form a prefix of the
// list; unfilled slots are never reported.
type NeighbourSet struct {
	slots  []Neighbour
	filled int
}

// NewNeighbourSet returns an empty set with capacity k.
func NewNeighbourSet(k int) *NeighbourSet {
	return &NeighbourSet{slots: make([]Neighbour, k)}
}

func newNeighbourSetCollector(k int) Collector {
	return NewNeighbourSet(k)
}

// Reset marks every slot as unfilled.
func (s *NeighbourSet) Reset() {
	s.filled = 0
}

func (s *NeighbourSet) Cap() int {
	return len(s.slots)
}

func (s *NeighbourSet) Len() int {
	return s.filled
}

// Offer inserts n if it is closer than the current worst resident or a slot
// is still unfilled. The previous occupant of the last slot is dropped when
// the set is full.
func (s *NeighbourSet) Offer(n Neighbour) bool {
	k := len(s.slots)
	// Walk back from the worst slot while the slot is unfilled or strictly farther.
	index := k - 1
	for index >= 0 && (index >= s.filled || n.distance < s.slots[index].distance) {
		index--
	}
	pos := index + 1
	if pos >= k {
		return false
	}
	for i := k - 1; i > pos; i-- {
		s.slots[i] = s.slots[i-1]
	}
	s.slots[pos] = n
	if s.filled < k {
		s.filled++
	}
	return true
}

// Neighbours returns a copy of the filled slots.
func (s *NeighbourSet) Neighbours() []Neighbour {
	result := make([]Neighbour, s.filled)
	copy(result, s.slots[:s.filled])
	return result
}

// Worst returns the farthest resident.
func (s *NeighbourSet) Worst() (Neighbour, bool) {
	if s.filled == 0 {
		return Neighbour{}, false
	}
	return s.slots[s.filled-1], true
}
