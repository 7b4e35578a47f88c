package topn

import (
	"container/heap"
	"sort"
)

// candidateHeap is a max-heap over candidates by value. The comparator is
// a strict greater-than on value only, so equal-valued candidates pop in
// an unspecified relative order (documented nondeterminism).
type candidateHeap []Candidate

func (h candidateHeap) Len() int           { return len(h) }
func (h candidateHeap) Less(i, j int) bool { return h[i].Val > h[j].Val }
func (h candidateHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) { *h = append(*h, x.(Candidate)) }

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

// selectTopN reorders cands so that its min(len, ntop) largest values end
// up in strictly descending order, and returns that prefix as a view into
// cands' backing array. Requires ntop >= 1.
//
//   - len(cands) <= ntop: full unstable descending sort, everything kept.
//   - len(cands) > ntop: partial selection — heapify the whole slice
//     (O(len)) and pop ntop times (O(ntop·log len)). Each pop parks the
//     extracted maximum at the shrinking tail of the backing array, so
//     after ntop pops the tail holds the winners in ascending order; one
//     in-place reversal yields the descending prefix. The untaken
//     remainder is left in arbitrary heap order and is discarded by the
//     caller.
//
// No allocation on either path.
func selectTopN(cands []Candidate, ntop int) []Candidate {
	if len(cands) <= ntop {
		sort.Slice(cands, func(i, j int) bool { return cands[i].Val > cands[j].Val })

		return cands
	}

	h := candidateHeap(cands)
	heap.Init(&h)
	for i := 0; i < ntop; i++ {
		heap.Pop(&h)
	}

	// Pops landed at the tail with the overall maximum last; reverse the
	// tail window in place to obtain descending order.
	sel := cands[len(cands)-ntop:]
	for l, r := 0, len(sel)-1; l < r; l, r = l+1, r-1 {
		sel[l], sel[r] = sel[r], sel[l]
	}

	return sel
}
