package match

import "math"

// Unmatched is the sentinel index for events without a counterpart.
const Unmatched = -1

// Pair is one matched (A-index, B-index) entry with the score the strategy
// assigned it.
type Pair struct {
	A      int
	B      int
	Weight float64
}

// Correspondence is an immutable one-to-one index mapping between two event
// sequences. Every index of either sequence appears exactly once: matched to
// an index on the other side or explicitly Unmatched. The mapping is
// injective on both sides by construction.
type Correspondence struct {
	aToB    []int
	bToA    []int
	weights []float64 // per A index, NaN when unmatched
}

// newCorrespondence allocates an all-unmatched mapping.
func newCorrespondence(lenA, lenB int) *Correspondence {
	c := &Correspondence{
		aToB:    make([]int, lenA),
		bToA:    make([]int, lenB),
		weights: make([]float64, lenA),
	}
	for i := range c.aToB {
		c.aToB[i] = Unmatched
		c.weights[i] = math.NaN()
	}
	for i := range c.bToA {
		c.bToA[i] = Unmatched
	}
	return c
}

// pair records a match. Both sides must currently be unmatched.
func (c *Correspondence) pair(a, b int, weight float64) {
	c.aToB[a] = b
	c.bToA[b] = a
	c.weights[a] = weight
}

// unpair reverts a recorded match.
func (c *Correspondence) unpair(a int) {
	b := c.aToB[a]
	if b == Unmatched {
		return
	}
	c.bToA[b] = Unmatched
	c.aToB[a] = Unmatched
	c.weights[a] = math.NaN()
}

// LenA returns the number of A-side indices covered by the mapping.
func (c *Correspondence) LenA() int { return len(c.aToB) }

// LenB returns the number of B-side indices covered by the mapping.
func (c *Correspondence) LenB() int { return len(c.bToA) }

// BFor returns the B index matched to a, or Unmatched.
func (c *Correspondence) BFor(a int) int { return c.aToB[a] }

// AFor returns the A index matched to b, or Unmatched.
func (c *Correspondence) AFor(b int) int { return c.bToA[b] }

// Pairs returns all matched entries ordered by A index.
func (c *Correspondence) Pairs() []Pair {
	pairs := make([]Pair, 0, len(c.aToB))
	for a, b := range c.aToB {
		if b != Unmatched {
			pairs = append(pairs, Pair{A: a, B: b, Weight: c.weights[a]})
		}
	}
	return pairs
}

// UnmatchedA returns the A indices without a counterpart, ascending.
func (c *Correspondence) UnmatchedA() []int {
	out := make([]int, 0)
	for a, b := range c.aToB {
		if b == Unmatched {
			out = append(out, a)
		}
	}
	return out
}

// UnmatchedB returns the B indices without a counterpart, ascending.
func (c *Correspondence) UnmatchedB() []int {
	out := make([]int, 0)
	for b, a := range c.bToA {
		if a == Unmatched {
			out = append(out, b)
		}
	}
	return out
}

// TotalWeight returns the sum of matched pair weights.
func (c *Correspondence) TotalWeight() float64 {
	var total float64
	for a, b := range c.aToB {
		if b != Unmatched {
			total += c.weights[a]
		}
	}
	return total
}
