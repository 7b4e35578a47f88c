package topn_test

import (
	"fmt"

	"github.com/katalvlaran/sparsetopn/csr"
	"github.com/katalvlaran/sparsetopn/topn"
)

// ExampleMultiply keeps the two best entries per row of A×I. Entries
// within a row come out ordered by descending value, not by column.
func ExampleMultiply() {
	a, _ := csr.FromDense([][]float64{
		{1, 2, 0},
		{0, 0, 3},
	})
	b, _ := csr.Identity(3)

	c, err := topn.Multiply(a, b, 2, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("RowPtr:", c.RowPtr)
	fmt.Println("ColIdx:", c.ColIdx)
	fmt.Println("Values:", c.Values)
	// Output:
	// RowPtr: [0 2 3]
	// ColIdx: [1 0 2]
	// Values: [2 1 3]
}

// ExampleMultiplyInto sizes the output buffer with the exact structural
// bound before running the kernel — the pattern for callers that manage
// their own allocations.
func ExampleMultiplyInto() {
	a, _ := csr.FromDense([][]float64{
		{1, 2, 0},
		{0, 0, 3},
	})
	b, _ := csr.Identity(3)

	const ntop = 2
	fill, _ := topn.MaxRowFill(a, b)
	perRow := min(ntop, fill)
	out, _ := topn.NewBuffer(a.Rows, perRow*a.Rows)

	nnz, err := topn.MultiplyInto(a, b, ntop, 1.5, out)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("fill bound:", fill)
	fmt.Println("entries:", nnz)
	fmt.Println("values:", out.Val[:nnz])
	// Output:
	// fill bound: 2
	// entries: 2
	// values: [2 3]
}

// ExampleCumulativeRowFill contrasts the two structural estimators on a
// matrix whose second row is wider than its first: the cumulative pass
// only counts columns no earlier row has claimed.
func ExampleCumulativeRowFill() {
	a, _ := csr.FromDense([][]float64{
		{1, 0},
		{1, 1},
	})
	b, _ := csr.Identity(2)

	exact, _ := topn.MaxRowFill(a, b)
	cumulative, _ := topn.CumulativeRowFill(a, b)
	fmt.Println("exact:", exact)
	fmt.Println("cumulative:", cumulative)
	// Output:
	// exact: 2
	// cumulative: 1
}
