package go_diveknn

// Neighbour is a candidate record together with its distance to the query.
type Neighbour struct {
	index    int
	record   Record
	distance float64
}

// NewNeighbour pairs the record at index with its distance to a query.
func NewNeighbour(index int, record Record, distance float64) Neighbour {
	return Neighbour{index: index, record: record, distance: distance}
}

// Index is the position of the record in the classifier's collection,
// or -1 for records that are not part of it.
func (n Neighbour) Index() int {
	return n.index
}

func (n Neighbour) Record() Record {
	return n.record
}

func (n Neighbour) Distance() float64 {
	return n.distance
}
