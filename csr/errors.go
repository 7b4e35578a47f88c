// SPDX-License-Identifier: MIT
// Package csr: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the csr
// package. Validators and constructors MUST return these sentinels and tests
// MUST check them via errors.Is. No function in this package panics on
// user-triggered error conditions.

package csr

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "csr: ..." for consistency and to allow
// easy grepping across logs. Sentinels are wrapped with a call-site tag
// (fmt.Errorf("Tag: %w", ErrX)) at the point of detection; callers still
// match with errors.Is.

var (
	// ErrNilMatrix indicates that a nil *Matrix was passed where a matrix
	// is required.
	ErrNilMatrix = errors.New("csr: nil matrix")

	// ErrInvalidDimensions indicates non-positive (or, for FromDense,
	// inconsistent) matrix dimensions.
	ErrInvalidDimensions = errors.New("csr: dimensions must be > 0")

	// ErrBadRowPtr indicates a malformed row-pointer array: wrong length,
	// nonzero first element, a decreasing step, or a final offset that does
	// not match the stored entry count.
	ErrBadRowPtr = errors.New("csr: malformed row pointer array")

	// ErrIndexOutOfRange indicates a column index outside [0, Cols), or a
	// row index outside [0, Rows) on accessors.
	ErrIndexOutOfRange = errors.New("csr: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands (a.Cols != b.Rows for a product) or between parallel arrays
	// (len(ColIdx) != len(Values), ragged dense input).
	ErrDimensionMismatch = errors.New("csr: dimension mismatch")
)
