// SPDX-License-Identifier: MIT
// Package: csr
//
// Purpose:
//  - Provide a single, canonical source of truth for CSR invariant checks.
//  - Keep kernels minimal by delegating shape/nil/structure checks here.
//  - Return sentinel errors wrapped with a call-site tag so callers can
//    match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Validate runs one O(Rows) pass over RowPtr and one O(nnz) pass over
//    ColIdx — the same order of work as a single multiply over the matrix.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape →
//    RowPtr → ColIdx) so the first violation reported is deterministic.

package csr

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return csrErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// Validate checks every structural CSR invariant of m:
//
//  1. m is non-nil (ErrNilMatrix).
//  2. Rows and Cols are non-negative (ErrInvalidDimensions).
//  3. len(RowPtr) == Rows+1 and RowPtr[0] == 0 (ErrBadRowPtr).
//  4. RowPtr is non-decreasing (ErrBadRowPtr).
//  5. RowPtr[Rows] == len(ColIdx) == len(Values)
//     (ErrBadRowPtr / ErrDimensionMismatch).
//  6. Every ColIdx value lies in [0, Cols) (ErrIndexOutOfRange).
//
// Complexity: O(Rows + nnz). Space: O(1).
func Validate(m *Matrix) error {
	// 1) Non-nil receiver.
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	// 2) Dimensions. Zero is tolerated only as the degenerate empty matrix.
	if m.Rows < 0 || m.Cols < 0 {
		return csrErrorf("Validate", ErrInvalidDimensions)
	}

	// 3) RowPtr length and anchor.
	if len(m.RowPtr) != m.Rows+1 || m.RowPtr[0] != 0 {
		return csrErrorf("Validate: RowPtr", ErrBadRowPtr)
	}

	// 4) RowPtr monotonicity.
	var i int
	for i = 0; i < m.Rows; i++ {
		if m.RowPtr[i+1] < m.RowPtr[i] {
			return csrErrorf("Validate: RowPtr", ErrBadRowPtr)
		}
	}

	// 5) Array agreement.
	if len(m.ColIdx) != len(m.Values) {
		return csrErrorf("Validate: arrays", ErrDimensionMismatch)
	}
	if m.RowPtr[m.Rows] != len(m.ColIdx) {
		return csrErrorf("Validate: RowPtr end", ErrBadRowPtr)
	}

	// 6) Column index range.
	var k int
	for _, k = range m.ColIdx {
		if k < 0 || k >= m.Cols {
			return csrErrorf("Validate: ColIdx", ErrIndexOutOfRange)
		}
	}

	return nil
}

// ValidateProduct ensures a and b are both structurally valid and
// conformable for the product a × b (a.Cols == b.Rows).
//
// Errors: any Validate error from either operand; ErrDimensionMismatch
// when the inner dimensions disagree.
// Complexity: O(Rows_a + Rows_b + nnz_a + nnz_b).
func ValidateProduct(a, b *Matrix) error {
	if err := Validate(a); err != nil {
		return csrErrorf("ValidateProduct: a", err)
	}
	if err := Validate(b); err != nil {
		return csrErrorf("ValidateProduct: b", err)
	}
	if a.Cols != b.Rows {
		return csrErrorf("ValidateProduct", ErrDimensionMismatch)
	}

	return nil
}
