// SPDX-License-Identifier: MIT

// Package csr provides the Compressed Sparse Row matrix container used by
// the topn kernels, together with validation and dense⇄CSR conversion.
//
// A CSR matrix stores only its nonzero entries as three parallel arrays:
//
//	RowPtr[0..Rows]  — offsets into ColIdx/Values; row i occupies the
//	                   half-open range [RowPtr[i], RowPtr[i+1])
//	ColIdx[0..nnz)   — column index of each stored entry, in [0, Cols)
//	Values[0..nnz)   — the entry values
//
// Invariants (enforced by Validate, assumed by the kernels):
//
//   - len(RowPtr) == Rows+1, RowPtr[0] == 0, RowPtr non-decreasing
//   - RowPtr[Rows] == len(ColIdx) == len(Values)
//   - every ColIdx value lies in [0, Cols)
//
// Column order within a row is NOT required to be sorted and this package
// never sorts it. Duplicate column indices within a row are permitted by
// the format; consumers that accumulate (such as topn) simply sum them.
//
// Errors are package-level sentinels matched via errors.Is; validators
// wrap them with a call-site tag but never hide them.
package csr
