package topn

import "github.com/katalvlaran/sparsetopn/csr"

// MaxRowFill computes the exact structural fill bound for C = A×B: the
// maximum, over all rows of A, of the number of distinct columns that
// row's product could populate. No values are computed; only B's nonzero
// pattern is walked.
//
// The bound is exact per row and independent of any ntop/lowerBound a
// later multiply might apply, so capacity min(ntop, MaxRowFill)·a.Rows is
// always enough for MultiplyInto. A row whose pattern reaches every
// column of B reports b.Cols.
//
// Errors: the csr validation sentinels via ValidateProduct.
// Complexity: O(pattern flops) time, O(b.Cols) space.
func MaxRowFill(a, b *csr.Matrix) (int, error) {
	if err := csr.ValidateProduct(a, b); err != nil {
		return 0, err
	}

	// Same linked-list walk as the accumulator, without the value lane.
	next := make([]int, b.Cols)
	for k := range next {
		next[k] = unlinked
	}

	var (
		i, jj, kk int
		j, k      int
		head      int
		length    int
		fill      int
	)
	for i = 0; i < a.Rows; i++ {
		head = emptyList
		length = 0
		for jj = a.RowPtr[i]; jj < a.RowPtr[i+1]; jj++ {
			j = a.ColIdx[jj]
			for kk = b.RowPtr[j]; kk < b.RowPtr[j+1]; kk++ {
				k = b.ColIdx[kk]
				if next[k] == unlinked {
					next[k] = head
					head = k
					length++
				}
			}
		}
		if length > fill {
			fill = length
		}

		// Drain the list so the next row starts empty.
		for jj = 0; jj < length; jj++ {
			k = head
			head = next[k]
			next[k] = unlinked
		}
	}

	return fill, nil
}

// CumulativeRowFill computes the cumulative global-marking fill estimate
// for C = A×B.
//
// Unlike MaxRowFill, the visited marks persist across rows: each row
// counts only the columns its pattern reaches that NO earlier row (in row
// order) has already claimed, then marks them. The returned value is the
// running maximum of those "newly discovered columns" counts.
//
// This is deliberately NOT the exact per-row bound — for rows processed
// later it generally understates the true column count, and the result
// depends on row order. The persistent marking is intentional, not a bug;
// do not substitute MaxRowFill where a caller asks for this estimator.
//
// Errors: the csr validation sentinels via ValidateProduct.
// Complexity: O(pattern flops) time, O(b.Cols) space.
func CumulativeRowFill(a, b *csr.Matrix) (int, error) {
	if err := csr.ValidateProduct(a, b); err != nil {
		return 0, err
	}

	// One mark array for the whole matrix; never reset between rows.
	marked := make([]bool, b.Cols)

	var (
		i, jj, kk int
		j, k      int
		length    int
		fill      int
	)
	for i = 0; i < a.Rows; i++ {
		length = 0
		for jj = a.RowPtr[i]; jj < a.RowPtr[i+1]; jj++ {
			j = a.ColIdx[jj]
			for kk = b.RowPtr[j]; kk < b.RowPtr[j+1]; kk++ {
				k = b.ColIdx[kk]
				if !marked[k] {
					marked[k] = true
					length++
				}
			}
		}
		if length > fill {
			fill = length
		}
	}

	return fill, nil
}
