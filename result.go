package go_diveknn

// Prediction is the outcome of classifying one record.
type Prediction struct {
	// Index is the record's position in the collection, -1 for external queries.
	Index      int
	Actual     Label
	Predicted  Label
	Neighbours []Neighbour
}

func (p Prediction) Correct() bool {
	return p.Actual == p.Predicted
}

// Result summarizes a leave-one-out evaluation.
type Result struct {
	K           int
	Correct     int
	Total       int
	Predictions []Prediction
}

// Percentage returns Correct/Total*100 in single precision.
func (r *Result) Percentage() float32 {
	if r.Total == 0 {
		return 0
	}
	return float32(r.Correct) / float32(r.Total) * 100
}

// Confusion counts predictions by actual (row) and predicted (column)
// label, both indexed in Labels order.
type Confusion [len(Labels)][len(Labels)]int

// Confusion builds the confusion matrix of the evaluation.
func (r *Result) Confusion() Confusion {
	var m Confusion
	for _, p := range r.Predictions {
		actual, predicted := p.Actual.ordinal(), p.Predicted.ordinal()
		if actual < 0 || predicted < 0 {
			continue
		}
		m[actual][predicted]++
	}
	return m
}

// Count returns how often actual was predicted as predicted.
func (m Confusion) Count(actual, predicted Label) int {
	a, p := actual.ordinal(), predicted.ordinal()
	if a < 0 || p < 0 {
		return 0
	}
	return m[a][p]
}

// Max returns the largest cell.
func (m Confusion) Max() int {
	best := 0
	for _, row := range m {
		for _, v := range row {
			best = max(best, v)
		}
	}
	return best
}
