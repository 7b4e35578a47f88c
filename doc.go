// Package sparsetopn computes the product of two CSR sparse matrices while
// retaining, per output row, only the ntop largest entries above a threshold.
//
// 🚀 What is sparsetopn?
//
//	A small, focused library for "multiply then keep the best few":
//		• csr/  — the CSR container, validation and dense⇄CSR conversion
//		• topn/ — the kernel: sparse row accumulation, bounded top-N
//		  selection, and structural fill estimation for buffer sizing
//
// The classic use case is large-scale similarity search: A holds sparse
// feature vectors (for example TF-IDF rows), B is the transposed corpus,
// and each output row keeps only the ntop best matches whose score exceeds
// lower_bound. Materializing the full product would be both enormous and
// useless; this library never does.
//
// Two surfaces are offered:
//
//	topn.Multiply / topn.MultiplyWithFill
//	    allocate the result for you and return a *csr.Matrix.
//	topn.MultiplyInto / topn.MultiplyIntoWithFill
//	    write into caller-sized buffers; pair with topn.MaxRowFill or
//	    topn.CumulativeRowFill to pick a capacity up front.
//
// Quick example:
//
//	a, _ := csr.FromDense([][]float64{{1, 2, 0}, {0, 0, 3}})
//	b, _ := csr.Identity(3)
//	c, _ := topn.Multiply(a, b, 2, 0) // 2 best entries per row, values > 0
//
// All kernels are single-threaded, deterministic up to tie order among
// equal values, and allocation-conscious: the accumulator resets only the
// columns it touched, never the whole row.
package sparsetopn
