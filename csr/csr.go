// SPDX-License-Identifier: MIT

// Package csr: the Matrix container and its constructors.
// Construction is strict: New validates the caller's arrays up front and
// returns sentinel errors; FromDense and Identity build already-valid
// matrices. Fields stay exported so kernels can walk the raw arrays
// without accessor overhead.

package csr

import "fmt"

// Matrix is a sparse matrix in Compressed Sparse Row form.
//
// Row i's stored entries occupy ColIdx[RowPtr[i]:RowPtr[i+1]] and
// Values[RowPtr[i]:RowPtr[i+1]]. Entries within a row are NOT sorted by
// column. See the package documentation for the full invariant list.
type Matrix struct {
	RowPtr []int     // row offsets, length Rows+1
	ColIdx []int     // column index per stored entry
	Values []float64 // value per stored entry
	Rows   int       // number of rows
	Cols   int       // number of columns
}

// csrErrorf wraps a sentinel with the given call-site tag.
// Kept tiny and local so every error in this package reads "Tag: csr: ...".
func csrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// New wraps the caller's arrays into a Matrix after full validation.
//
// The arrays are NOT copied; the returned Matrix aliases them. Use Clone
// for an independent copy.
//
// Errors: ErrInvalidDimensions if rows or cols is < 1; ErrBadRowPtr,
// ErrIndexOutOfRange, ErrDimensionMismatch per Validate.
// Complexity: O(nnz) for the validation scan.
func New(rows, cols int, rowPtr, colIdx []int, values []float64) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, csrErrorf("New", ErrInvalidDimensions)
	}
	m := &Matrix{RowPtr: rowPtr, ColIdx: colIdx, Values: values, Rows: rows, Cols: cols}
	if err := Validate(m); err != nil {
		return nil, csrErrorf("New", err)
	}

	return m, nil
}

// FromDense builds a CSR matrix from a dense row-major [][]float64,
// storing only entries that are exactly nonzero.
//
// An empty input yields the canonical 0×0 matrix (RowPtr == []int{0}).
// Ragged input (rows of unequal length) is rejected.
//
// Errors: ErrDimensionMismatch on ragged input.
// Complexity: O(rows·cols).
func FromDense(dense [][]float64) (*Matrix, error) {
	if len(dense) == 0 {
		return &Matrix{RowPtr: []int{0}}, nil
	}

	rows := len(dense)
	cols := len(dense[0])
	rowPtr := make([]int, 1, rows+1)
	var colIdx []int
	var values []float64

	var i, j int
	for i = 0; i < rows; i++ {
		if len(dense[i]) != cols {
			return nil, csrErrorf("FromDense", ErrDimensionMismatch)
		}
		for j = 0; j < cols; j++ {
			if dense[i][j] != 0 {
				colIdx = append(colIdx, j)
				values = append(values, dense[i][j])
			}
		}
		rowPtr = append(rowPtr, len(values))
	}

	return &Matrix{RowPtr: rowPtr, ColIdx: colIdx, Values: values, Rows: rows, Cols: cols}, nil
}

// Identity returns I_n (ones on the diagonal) in CSR form.
//
// Errors: ErrInvalidDimensions if n < 1.
// Complexity: O(n).
func Identity(n int) (*Matrix, error) {
	if n < 1 {
		return nil, csrErrorf("Identity", ErrInvalidDimensions)
	}
	rowPtr := make([]int, n+1)
	colIdx := make([]int, n)
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		rowPtr[i+1] = i + 1
		colIdx[i] = i
		values[i] = 1.0
	}

	return &Matrix{RowPtr: rowPtr, ColIdx: colIdx, Values: values, Rows: n, Cols: n}, nil
}

// NNZ returns the number of stored entries.
// Complexity: O(1).
func (m *Matrix) NNZ() int {
	return len(m.Values)
}

// Row returns the column-index and value sub-slices of row i.
//
// The slices are views into the matrix arrays, not copies; mutating them
// mutates the matrix.
//
// Errors: ErrIndexOutOfRange if i is outside [0, Rows).
// Complexity: O(1).
func (m *Matrix) Row(i int) (cols []int, vals []float64, err error) {
	if i < 0 || i >= m.Rows {
		return nil, nil, csrErrorf("Row", ErrIndexOutOfRange)
	}
	start, end := m.RowPtr[i], m.RowPtr[i+1]

	return m.ColIdx[start:end], m.Values[start:end], nil
}

// ToDense materializes the dense [][]float64 equivalent.
//
// Duplicate column indices within a row, if present, are summed.
// Complexity: O(Rows·Cols + nnz).
func (m *Matrix) ToDense() [][]float64 {
	dense := make([][]float64, m.Rows)
	var i, p int
	for i = range dense {
		dense[i] = make([]float64, m.Cols)
	}
	for i = 0; i < m.Rows; i++ {
		for p = m.RowPtr[i]; p < m.RowPtr[i+1]; p++ {
			dense[i][m.ColIdx[p]] += m.Values[p]
		}
	}

	return dense
}

// Clone returns a deep copy of m, independent of the original.
// Complexity: O(Rows + nnz).
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{
		RowPtr: make([]int, len(m.RowPtr)),
		ColIdx: make([]int, len(m.ColIdx)),
		Values: make([]float64, len(m.Values)),
		Rows:   m.Rows,
		Cols:   m.Cols,
	}
	copy(c.RowPtr, m.RowPtr)
	copy(c.ColIdx, m.ColIdx)
	copy(c.Values, m.Values)

	return c
}
