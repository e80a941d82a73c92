package match

import (
	"math"
	"sort"

	"github.com/haimasree/pEYES/pkg/event"
)

// edge is one candidate pairing in the bipartite overlap graph.
type edge struct {
	a, b   int
	weight float64
}

// maxOverlapAssign builds the sparse candidate graph (edge iff the intervals
// overlap and survive the cutoffs) and solves the optimal one-to-one
// assignment maximizing total overlap. Only events that carry at least one
// edge enter the assignment matrix, so cost tracks the candidate-pair count
// rather than the full event-count square in the common case.
func maxOverlapAssign(a, b event.Sequence, p Params) *Correspondence {
	c := newCorrespondence(a.Len(), b.Len())

	var edges []edge
	aTouched := make(map[int]bool)
	bTouched := make(map[int]bool)
	for ai := 0; ai < a.Len(); ai++ {
		for bi := 0; bi < b.Len(); bi++ {
			if p.SameLabelOnly && a.At(ai).Label() != b.At(bi).Label() {
				continue
			}
			ov, ok := overlapEligible(a.At(ai), b.At(bi), p)
			if !ok {
				continue
			}
			edges = append(edges, edge{a: ai, b: bi, weight: ov})
			aTouched[ai] = true
			bTouched[bi] = true
		}
	}
	if len(edges) == 0 {
		return c
	}

	// Compact index spaces over events that have any candidate at all.
	aIdx := sortedKeys(aTouched)
	bIdx := sortedKeys(bTouched)
	aPos := make(map[int]int, len(aIdx))
	bPos := make(map[int]int, len(bIdx))
	for i, v := range aIdx {
		aPos[v] = i
	}
	for i, v := range bIdx {
		bPos[v] = i
	}

	// Square cost matrix, padded with zero-weight non-edges so the perfect
	// assignment on the padding equals the max-weight matching on the
	// original graph. Costs are negated weights for minimization.
	n := len(aIdx)
	if len(bIdx) > n {
		n = len(bIdx)
	}
	cost := make([][]float64, n)
	for i := range cost {
		cost[i] = make([]float64, n)
	}
	weightAt := make(map[[2]int]float64, len(edges))
	for _, e := range edges {
		cost[aPos[e.a]][bPos[e.b]] = -e.weight
		weightAt[[2]int{e.a, e.b}] = e.weight
	}

	assignment := solveAssignment(cost)
	for i, j := range assignment {
		if i >= len(aIdx) || j >= len(bIdx) {
			continue // padding row or column
		}
		ai, bi := aIdx[i], bIdx[j]
		w, isEdge := weightAt[[2]int{ai, bi}]
		if !isEdge {
			continue // zero-weight padding cell
		}
		c.pair(ai, bi, w)
	}

	normalizeTies(c, weightAt)
	return c
}

// solveAssignment runs the Hungarian algorithm on a square cost matrix and
// returns, per row, the assigned column. O(n^3).
func solveAssignment(cost [][]float64) []int {
	n := len(cost)
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	rowFor := make([]int, n+1) // rowFor[j]: row matched to column j (1-based)
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		rowFor[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}
		for {
			used[j0] = true
			i0 := rowFor[j0]
			delta := math.Inf(1)
			j1 := 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[rowFor[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if rowFor[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			rowFor[j0] = rowFor[j1]
			j0 = j1
		}
	}

	assignment := make([]int, n)
	for j := 1; j <= n; j++ {
		if rowFor[j] > 0 {
			assignment[rowFor[j]-1] = j - 1
		}
	}
	return assignment
}

// normalizeTies rewrites equal-weight optimal solutions into the
// lexicographically smallest (A-index, B-index) pair list. Three moves
// preserve total weight: shifting a pair to a smaller unmatched B along an
// equal-weight edge, shifting it to a smaller unmatched A, and swapping
// crossed matched pairs. Every move strictly lowers the pair list order, so
// the loop terminates.
func normalizeTies(c *Correspondence, weightAt map[[2]int]float64) {
	for tieStep(c, weightAt) {
	}
}

// tieStep applies the first weight-preserving move that lowers the pair list
// order. Reports whether a move was made.
func tieStep(c *Correspondence, weightAt map[[2]int]float64) bool {
	pairs := c.Pairs()

	for _, p := range pairs {
		for b := 0; b < p.B; b++ {
			if c.AFor(b) != Unmatched {
				continue
			}
			if w, ok := weightAt[[2]int{p.A, b}]; ok && w == p.Weight {
				c.unpair(p.A)
				c.pair(p.A, b, w)
				return true
			}
		}
	}

	for _, p := range pairs {
		for a := 0; a < p.A; a++ {
			if c.BFor(a) != Unmatched {
				continue
			}
			if w, ok := weightAt[[2]int{a, p.B}]; ok && w == p.Weight {
				c.unpair(p.A)
				c.pair(a, p.B, w)
				return true
			}
		}
	}

	for i := 0; i < len(pairs); i++ {
		for j := i + 1; j < len(pairs); j++ {
			p, q := pairs[i], pairs[j]
			if p.B <= q.B {
				continue
			}
			w1, ok1 := weightAt[[2]int{p.A, q.B}]
			w2, ok2 := weightAt[[2]int{q.A, p.B}]
			if !ok1 || !ok2 {
				continue
			}
			if w1+w2 == p.Weight+q.Weight {
				c.unpair(p.A)
				c.unpair(q.A)
				c.pair(p.A, q.B, w1)
				c.pair(q.A, p.B, w2)
				return true
			}
		}
	}
	return false
}

func sortedKeys(m map[int]bool) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
