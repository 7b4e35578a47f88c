package topn

import "github.com/katalvlaran/sparsetopn/csr"

// MultiplyInto computes C = A×B, keeping per row the ntop largest entries
// whose value strictly exceeds lowerBound, and writes the result into the
// caller-allocated buffer.
//
// Output contract: out.Ptr is non-decreasing with out.Ptr[0] == 0; row i's
// segment holds min(ntop, |{k : (A·B)[i,k] > lowerBound}|) entries in
// strictly descending value order (equal-value order unspecified).
// Entries within a row are ordered by value, NOT by column index.
//
// Returns the total number of entries written (== out.Ptr[a.Rows]).
//
// Preconditions and validation (in order):
//  1. out must be non-nil (ErrNilBuffer) and well-shaped (ErrBadBuffer).
//  2. ntop must be >= 1 (ErrBadNTop).
//  3. a and b must be valid CSR with a.Cols == b.Rows
//     (csr.ErrNilMatrix, csr.ErrBadRowPtr, …, csr.ErrDimensionMismatch).
//
// ErrBufferTooSmall is returned the moment a row's selected entries would
// overflow the buffer capacity; rows already written remain valid.
//
// Complexity: O(flops + Σ_i touched_i·log touched_i) time, O(b.Cols)
// working space.
func MultiplyInto(a, b *csr.Matrix, ntop int, lowerBound float64, out *Buffer) (int, error) {
	// 1-2) Buffer shape, then kernel arguments.
	if err := validateBuffer(a, out); err != nil {
		return 0, err
	}
	if err := validateArgs(a, b, ntop); err != nil {
		return 0, err
	}
	nnz, _, err := multiplyInto(a, b, ntop, lowerBound, out)

	return nnz, err
}

// MultiplyIntoWithFill is MultiplyInto fused with the exact structural
// fill bound: alongside the result it returns the maximum, over all rows,
// of the distinct output-column count before thresholding and truncation
// (the same number MaxRowFill reports standalone). The bound is computed
// as a free side-product of the accumulator walk.
//
// Returns (nnz, fill, err); validation and output contract are identical
// to MultiplyInto.
func MultiplyIntoWithFill(a, b *csr.Matrix, ntop int, lowerBound float64, out *Buffer) (int, int, error) {
	if err := validateBuffer(a, out); err != nil {
		return 0, 0, err
	}
	if err := validateArgs(a, b, ntop); err != nil {
		return 0, 0, err
	}

	return multiplyInto(a, b, ntop, lowerBound, out)
}

// Multiply is the allocating convenience over MultiplyInto: it sizes the
// output for the worst case (min(ntop, b.Cols) entries per row), runs the
// kernel, and returns the result trimmed to its actual entry count.
//
// Errors: ErrBadNTop and the csr validation sentinels, as MultiplyInto.
// Complexity: as MultiplyInto plus the O(min(ntop, b.Cols)·a.Rows)
// allocation.
func Multiply(a, b *csr.Matrix, ntop int, lowerBound float64) (*csr.Matrix, error) {
	c, _, err := MultiplyWithFill(a, b, ntop, lowerBound)

	return c, err
}

// MultiplyWithFill is the allocating convenience over
// MultiplyIntoWithFill, returning the result matrix together with the
// exact per-row fill bound.
func MultiplyWithFill(a, b *csr.Matrix, ntop int, lowerBound float64) (*csr.Matrix, int, error) {
	if err := validateArgs(a, b, ntop); err != nil {
		return nil, 0, err
	}

	// Worst case per row: every column survives, capped by ntop.
	perRow := ntop
	if b.Cols < perRow {
		perRow = b.Cols
	}
	out, err := NewBuffer(a.Rows, perRow*a.Rows)
	if err != nil {
		return nil, 0, err
	}

	nnz, fill, err := multiplyInto(a, b, ntop, lowerBound, out)
	if err != nil {
		return nil, 0, err
	}

	return &csr.Matrix{
		RowPtr: out.Ptr,
		ColIdx: out.Col[:nnz],
		Values: out.Val[:nnz],
		Rows:   a.Rows,
		Cols:   b.Cols,
	}, fill, nil
}

// validateArgs checks the kernel arguments shared by every value-producing
// entry point: positive ntop, then full CSR validation of both operands
// and product conformability.
func validateArgs(a, b *csr.Matrix, ntop int) error {
	if ntop < 1 {
		return topnErrorf("Multiply", ErrBadNTop)
	}

	return csr.ValidateProduct(a, b)
}

// validateBuffer checks the caller-allocated output buffer against the
// result shape: non-nil, Ptr of length a.Rows+1, Col and Val of equal
// length. The nil check on a is deferred to validateArgs; a nil a here
// simply skips the Ptr length comparison.
func validateBuffer(a *csr.Matrix, out *Buffer) error {
	if out == nil {
		return topnErrorf("MultiplyInto", ErrNilBuffer)
	}
	if len(out.Col) != len(out.Val) {
		return topnErrorf("MultiplyInto", ErrBadBuffer)
	}
	if a != nil && len(out.Ptr) != a.Rows+1 {
		return topnErrorf("MultiplyInto", ErrBadBuffer)
	}

	return nil
}

// multiplyInto is the shared kernel behind every entry point. Inputs are
// assumed validated. Returns the entries written, the exact per-row fill
// bound, and ErrBufferTooSmall if capacity runs out.
func multiplyInto(a, b *csr.Matrix, ntop int, lowerBound float64, out *Buffer) (int, int, error) {
	acc := newAccumulator(b.Cols)
	cands := make([]Candidate, 0, min(ntop, b.Cols))

	capacity := len(out.Col)
	nnz := 0
	fill := 0
	out.Ptr[0] = 0

	var (
		i   int
		sel []Candidate
		c   Candidate
	)
	for i = 0; i < a.Rows; i++ {
		start, end := a.RowPtr[i], a.RowPtr[i+1]
		acc.scatter(a.ColIdx[start:end], a.Values[start:end], b)
		if acc.length > fill {
			fill = acc.length
		}

		cands = acc.drain(lowerBound, cands[:0])
		sel = selectTopN(cands, ntop)

		// Fail fast before touching memory past the capacity.
		if nnz+len(sel) > capacity {
			return nnz, fill, topnErrorf("MultiplyInto", ErrBufferTooSmall)
		}
		for _, c = range sel {
			out.Col[nnz] = c.Col
			out.Val[nnz] = c.Val
			nnz++
		}
		out.Ptr[i+1] = nnz
	}

	return nnz, fill, nil
}
