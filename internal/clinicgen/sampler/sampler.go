// Package sampler provides the weighted random choice primitive used by the
// whole generation engine. A Table precomputes cumulative weights once so
// every draw is a single uniform sample plus a binary search.
package sampler

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Choice pairs an outcome with its non-negative weight.
type Choice[T any] struct {
	Item   T
	Weight float64
}

// Table is an immutable cumulative-weight table over a fixed set of outcomes.
// Outcome order is the construction order, so draws are deterministic for a
// seeded *rand.Rand.
type Table[T any] struct {
	items []T
	cum   []float64
	total float64
}

// New builds a Table from the given choices. It fails on an empty choice set,
// a negative weight, or a non-positive weight total.
func New[T any](choices []Choice[T]) (*Table[T], error) {
	if len(choices) == 0 {
		return nil, fmt.Errorf("sampler: no choices")
	}

	t := &Table[T]{
		items: make([]T, 0, len(choices)),
		cum:   make([]float64, 0, len(choices)),
	}
	for i, c := range choices {
		if c.Weight < 0 {
			return nil, fmt.Errorf("sampler: negative weight %v at index %d", c.Weight, i)
		}
		t.total += c.Weight
		t.items = append(t.items, c.Item)
		t.cum = append(t.cum, t.total)
	}
	if t.total <= 0 {
		return nil, fmt.Errorf("sampler: weight total must be > 0, got %v", t.total)
	}
	return t, nil
}

// MustNew is New for tables built from literal weights; it panics on error.
// Used for the engine's compiled-in weight tables, where a bad table is a
// programming defect.
func MustNew[T any](choices []Choice[T]) *Table[T] {
	t, err := New(choices)
	if err != nil {
		panic(err)
	}
	return t
}

// Pick draws one outcome. Over many draws the empirical frequency of each
// outcome converges to weight/total.
func (t *Table[T]) Pick(r *rand.Rand) T {
	u := r.Float64() * t.total
	// strictly-greater search: a draw landing exactly on a cumulative bound
	// belongs to the next bucket, so zero-weight outcomes are never selected
	i := sort.Search(len(t.cum), func(i int) bool { return t.cum[i] > u })
	if i >= len(t.items) {
		i = len(t.items) - 1
	}
	return t.items[i]
}

// Len returns the number of outcomes in the table.
func (t *Table[T]) Len() int {
	return len(t.items)
}

// IntRange is an inclusive integer interval, usable as a Table outcome for
// compound draws: pick a bracket by weight, then draw uniformly inside it.
type IntRange struct {
	Lo int `yaml:"lo"`
	Hi int `yaml:"hi"`
}

// Pick draws uniformly from [Lo, Hi].
func (ir IntRange) Pick(r *rand.Rand) int {
	if ir.Hi <= ir.Lo {
		return ir.Lo
	}
	return ir.Lo + r.Intn(ir.Hi-ir.Lo+1)
}

// Contains reports whether n lies in [Lo, Hi].
func (ir IntRange) Contains(n int) bool {
	return n >= ir.Lo && n <= ir.Hi
}

// Triangular draws from a triangular distribution on [lo, hi] with the given
// mode, via the inverse CDF. Used to bias appointment dates toward the recent
// part of the generation window.
func Triangular(r *rand.Rand, lo, hi, mode float64) float64 {
	if hi <= lo {
		return lo
	}
	if mode < lo {
		mode = lo
	}
	if mode > hi {
		mode = hi
	}
	u := r.Float64()
	c := (mode - lo) / (hi - lo)
	if u < c {
		return lo + math.Sqrt(u*(hi-lo)*(mode-lo))
	}
	return hi - math.Sqrt((1-u)*(hi-lo)*(hi-mode))
}
