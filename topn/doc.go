// Package topn multiplies two CSR sparse matrices and keeps, per output
// row, only the ntop largest entries whose value strictly exceeds a
// threshold.
//
// The full dense-equivalent product of two large sparse matrices is
// usually both huge and uninteresting: callers doing similarity search
// want the best few matches per row, not every nonzero. topn never
// materializes the full product. Each row of A is expanded against B with
// a sparse accumulator, thresholded, and trimmed to its ntop largest
// values before anything is written out.
//
// Algorithm outline (per row of A):
//
//  1. Scatter: for every nonzero (j, v) in the row, walk row j of B and
//     accumulate sums[k] += v·B[j,k]. A singly linked list threaded
//     through next[] records each column the first time it is touched,
//     so the later reset costs O(touched), never O(nCols).
//  2. Drain: walk the linked list once, emitting a Candidate for every
//     column whose accumulated value strictly exceeds lowerBound, and
//     restore sums/next to their empty state along the way.
//  3. Select: keep the min(len, ntop) largest candidates in descending
//     value order — a full unstable sort when the row fits in ntop, a
//     heap-based partial selection when it does not.
//
// Complexity:
//
//	– Time:  O(flops + Σ touched·log touched) where flops is the number
//	  of scalar multiply-adds (Σ over A's nonzeros of |B row|); selection
//	  is O(touched) heapify + O(ntop·log touched) per row on the partial
//	  path.
//	– Space: O(nCols) working memory (sums, next), reused across rows.
//
// Buffer sizing:
//
// The Into entry points write into caller-allocated Buffers. MaxRowFill
// reports the exact widest-possible row (the max distinct-column count
// over rows, before thresholding), so capacity min(ntop, MaxRowFill)·rows
// always suffices. CumulativeRowFill is a cheaper, order-dependent
// estimate that counts only columns not already claimed by an earlier
// row; it is deliberately NOT the same bound (see its doc comment).
//
// Errors (sentinel):
//
//	– ErrBadNTop         if ntop < 1.
//	– ErrNilBuffer       if the output buffer is nil.
//	– ErrBadBuffer       if the buffer arrays disagree in shape.
//	– ErrBufferTooSmall  if the buffer capacity is exhausted mid-run.
//	– csr sentinels      (ErrNilMatrix, ErrBadRowPtr, …) from input
//	  validation, matched via errors.Is.
//
// Determinism: the computed values are a pure function of the inputs.
// The relative order of equal-valued candidates is unspecified (the
// comparator is a strict greater-than on value and the sorts are
// unstable); dependents must not rely on a particular tie order.
//
// Concurrency: every entry point allocates its own working state and is
// safe to call from multiple goroutines on shared (unmutated) inputs.
// The package performs no internal parallelization; CumulativeRowFill in
// particular is inherently sequential in row order.
package topn
