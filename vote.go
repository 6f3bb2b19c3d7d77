package go_diveknn

import (
	"math/rand"
	"sync"
)

// LabelTally counts neighbour labels, indexed in Labels order.
type LabelTally [len(Labels)]int

// Count returns the number of votes for l.
func (t LabelTally) Count(l Label) int {
	i := l.ordinal()
	if i < 0 {
		return 0
	}
	return t[i]
}

// Leaders returns every label sharing the highest count, in Labels order.
func (t LabelTally) Leaders() []Label {
	best := -1
	var leaders []Label
	for i, count := range t {
		switch {
		case count > best:
			best = count
			leaders = append(leaders[:0], Labels[i])
		case count == best:
			leaders = append(leaders, Labels[i])
		}
	}
	return leaders
}

// Tally counts the labels of neighbours.
func Tally(neighbours []Neighbour) LabelTally {
	var t LabelTally
	for _, n := range neighbours {
		if i := n.record.label.ordinal(); i >= 0 {
			t[i]++
		}
	}
	return t
}

// TieBreakPolicy picks a label when several share the plurality.
type TieBreakPolicy interface {
	// Choose receives the neighbours that were voted on and the tied
	// labels in Labels order.
	Choose(neighbours []Neighbour, tied []Label) Label
}

// Vote returns the plurality label among neighbours, consulting policy on ties.
func Vote(neighbours []Neighbour, policy TieBreakPolicy) Label {
	leaders := Tally(neighbours).Leaders()
	if len(leaders) == 1 {
		return leaders[0]
	}
	return policy.Choose(neighbours, leaders)
}

type firstSeen struct{}

// FirstSeen resolves ties towards the earliest label in Labels order.
var FirstSeen TieBreakPolicy = firstSeen{}

func (firstSeen) Choose(_ []Neighbour, tied []Label) Label {
	return tied[0]
}

// RandomTieBreak picks uniformly among the tied labels.
type RandomTieBreak struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomTieBreak returns a policy drawing from a source seeded with seed.
func NewRandomTieBreak(seed int64) *RandomTieBreak {
	return &RandomTieBreak{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomTieBreak) Choose(_ []Neighbour, tied []Label) Label {
	r.mu.Lock()
	defer r.mu.Unlock()
	return tied[r.rng.Intn(len(tied))]
}

type dropFarthest struct{}

// DropFarthest re-votes without the farthest neighbour until the tie is
// broken. With no neighbours left it falls back to FirstSeen.
var DropFarthest TieBreakPolicy = dropFarthest{}

func (dropFarthest) Choose(neighbours []Neighbour, tied []Label) Label {
	for len(neighbours) > 1 {
		neighbours = neighbours[:len(neighbours)-1]
		leaders := Tally(neighbours).Leaders()
		if len(leaders) == 1 {
			return leaders[0]
		}
	}
	if len(neighbours) == 1 {
		return neighbours[0].record.label
	}
	return FirstSeen.Choose(neighbours, tied)
}

// Tie-break policy names accepted by NewTieBreak.
const (
	TieBreakFirst  = "first"
	TieBreakRandom = "random"
	TieBreakDrop   = "drop-farthest"
)

// NewTieBreak resolves a policy by name. seed is only used by "random".
func NewTieBreak(name string, seed int64) (TieBreakPolicy, error) {
	switch name {
	case "", TieBreakFirst:
		return FirstSeen, nil
	case TieBreakRandom:
		return NewRandomTieBreak(seed), nil
	case TieBreakDrop:
		return DropFarthest, nil
	default:
		return nil, &InvalidConfigError{Field: "tie-break", Value: name, Reason: "unknown tie-break policy"}
	}
}
