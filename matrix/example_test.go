package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/blayer/matrix"
)

// ExampleDense_CopyCol demonstrates the zero-gradient outflow copy used by
// the boundary-layer stepper: the last column takes the values of its neighbor.
func ExampleDense_CopyCol() {
	u, _ := matrix.NewDenseFromRows([][]float64{
		{1, 1, 1},
		{1, 0.4, 0},
		{1, 0.2, 0},
	})

	_ = u.CopyCol(2, 1)
	fmt.Print(u)
	// Output:
	// [1, 1, 1]
	// [1, 0.4, 0.4]
	// [1, 0.2, 0.2]
}

// ExampleDense_CopyFrom shows the snapshot-then-write pattern used for
// double buffering.
func ExampleDense_CopyFrom() {
	cur, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	prev, _ := matrix.NewDense(2, 2)

	_ = prev.CopyFrom(cur)
	_ = cur.Set(0, 0, 10)

	a, _ := prev.At(0, 0)
	b, _ := cur.At(0, 0)
	fmt.Println(a, b)
	// Output: 1 10
}
