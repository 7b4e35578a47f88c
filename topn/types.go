// Package topn: shared types and sentinel errors.
package topn

import (
	"errors"
	"fmt"
)

// Candidate is a (column, value) pair produced while processing a single
// output row. Candidates live only between the accumulator's drain and the
// selector's trim; the survivors are copied into the output buffer.
type Candidate struct {
	Col int     // output column index
	Val float64 // accumulated dot-product value
}

// Buffer holds caller-allocated output CSR arrays for the Into entry
// points.
//
// Shape requirements (checked up front):
//
//	– len(Ptr) == rows(A)+1
//	– len(Col) == len(Val); their common length is the entry capacity
//
// After a successful run, Ptr[rows(A)] equals the total number of entries
// written and Col/Val hold valid data in [0, Ptr[rows(A)]).
type Buffer struct {
	Ptr []int     // output row offsets
	Col []int     // output column indices
	Val []float64 // output values
}

var (
	// ErrBadNTop indicates ntop < 1; every value-producing entry point
	// needs a positive per-row cap.
	ErrBadNTop = errors.New("topn: ntop must be >= 1")

	// ErrNilBuffer indicates a nil *Buffer was passed to an Into entry
	// point.
	ErrNilBuffer = errors.New("topn: nil output buffer")

	// ErrBadBuffer indicates buffer arrays of inconsistent shape
	// (Ptr length != rows+1, or len(Col) != len(Val)).
	ErrBadBuffer = errors.New("topn: malformed output buffer")

	// ErrBufferTooSmall indicates the buffer's entry capacity was
	// exhausted before the run completed. Rows already written remain
	// valid but Ptr is only filled up to the failing row.
	ErrBufferTooSmall = errors.New("topn: output buffer too small")
)

// topnErrorf wraps a sentinel with the given call-site tag, mirroring the
// csr package's convention so all errors read "Tag: pkg: ...".
func topnErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewBuffer allocates a Buffer for a result with the given row count and
// entry capacity. Convenience for Into callers; rows and capacity must be
// non-negative.
//
// Errors: ErrBadBuffer on negative arguments.
// Complexity: O(rows + capacity) zeroing by the runtime.
func NewBuffer(rows, capacity int) (*Buffer, error) {
	if rows < 0 || capacity < 0 {
		return nil, topnErrorf("NewBuffer", ErrBadBuffer)
	}

	return &Buffer{
		Ptr: make([]int, rows+1),
		Col: make([]int, capacity),
		Val: make([]float64, capacity),
	}, nil
}
