package topn

import "github.com/katalvlaran/sparsetopn/csr"

// Linked-list sentinels for the accumulator. next[k] == unlinked means
// column k is not in the current row's list; head == emptyList means the
// list is empty.
const (
	unlinked  = -1
	emptyList = -2
)

// accumulator is the sparse row accumulator (SPA): a dense value buffer
// plus an implicit singly linked list threaded through touched columns.
//
// sums[k] holds the in-progress dot product for output column k of the
// current row. next[k] chains every column touched this row, head pointing
// at the most recently linked one. Both arrays are lazily populated during
// scatter and fully restored to their empty state by drain, so the per-row
// reset costs O(touched columns) instead of O(nCols).
//
// One accumulator serves one invocation; it is reused across rows but is
// not safe for concurrent use.
type accumulator struct {
	sums   []float64 // dense partial dot products, zero when unlinked
	next   []int     // linked list over touched columns, unlinked when free
	head   int       // most recently linked column, emptyList when none
	length int       // distinct columns touched in the current row
}

// newAccumulator returns an empty accumulator over nCols columns.
func newAccumulator(nCols int) *accumulator {
	next := make([]int, nCols)
	for k := range next {
		next[k] = unlinked
	}

	return &accumulator{
		sums: make([]float64, nCols),
		next: next,
		head: emptyList,
	}
}

// scatter accumulates one row of A against B: for every nonzero (j, v) of
// the row, every nonzero (k, bv) of B's row j contributes v·bv to
// sums[k]. A column is linked exactly once, on first touch, no matter how
// many j values revisit it, so after scatter every linked sums[k] is the
// complete dot product.
//
// aCols/aVals are the row's column-index and value sub-slices.
// Complexity: O(flops for this row).
func (s *accumulator) scatter(aCols []int, aVals []float64, b *csr.Matrix) {
	var (
		jj, kk int
		j, k   int
		v      float64
	)
	for jj = range aCols {
		j = aCols[jj]
		v = aVals[jj]
		for kk = b.RowPtr[j]; kk < b.RowPtr[j+1]; kk++ {
			k = b.ColIdx[kk]
			s.sums[k] += v * b.Values[kk]
			if s.next[k] == unlinked {
				s.next[k] = s.head
				s.head = k
				s.length++
			}
		}
	}
}

// drain walks the linked list exactly length times, appending a Candidate
// to cands for every column whose accumulated value strictly exceeds
// lowerBound, and unconditionally resets next/sums for each visited
// column. On return the accumulator is empty again and cands holds the
// row's thresholded candidates in most-recently-touched-first order.
//
// Complexity: O(touched columns).
func (s *accumulator) drain(lowerBound float64, cands []Candidate) []Candidate {
	var k int
	for jj := 0; jj < s.length; jj++ {
		k = s.head
		if s.sums[k] > lowerBound {
			cands = append(cands, Candidate{Col: k, Val: s.sums[k]})
		}
		s.head = s.next[k]
		s.next[k] = unlinked
		s.sums[k] = 0
	}
	s.length = 0

	return cands
}
