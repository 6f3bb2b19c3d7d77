package go_diveknn

import (
	"github.com/oleiade/lane/v2"
)

// HeapCollector keeps the k closest neighbours in a max-priority queue.
// It holds the same distances as a NeighbourSet, but the order among
// equal distances is unspecified.
type HeapCollector struct {
	k     int
	queue *lane.PriorityQueue[Neighbour, float64]
}

// NewHeapCollector returns an empty collector with capacity k.
func NewHeapCollector(k int) *HeapCollector {
	return &HeapCollector{k: k, queue: lane.NewMaxPriorityQueue[Neighbour, float64]()}
}

// HeapCollectorFactory can be passed to WithCollector.
func HeapCollectorFactory(k int) Collector {
	return NewHeapCollector(k)
}

func (h *HeapCollector) Reset() {
	h.queue = lane.NewMaxPriorityQueue[Neighbour, float64]()
}

func (h *HeapCollector) Offer(n Neighbour) bool {
	if h.k <= 0 {
		return false
	}
	if int(h.queue.Size()) < h.k {
		h.queue.Push(n, n.distance)
		return true
	}
	_, worst, ok := h.queue.Head()
	if !ok || n.distance >= worst {
		return false
	}
	h.queue.Pop()
	h.queue.Push(n, n.distance)
	return true
}

// Neighbours returns the residents in ascending order. The queue is
// drained into the result and refilled, so the residents stay in place.
func (h *HeapCollector) Neighbours() []Neighbour {
	result := make([]Neighbour, int(h.queue.Size()))
	for i := len(result) - 1; i >= 0; i-- {
		n, _, ok := h.queue.Pop()
		if !ok {
			result = result[i+1:]
			break
		}
		result[i] = n
	}
	for _, n := range result {
		h.queue.Push(n, n.distance)
	}
	return result
}
