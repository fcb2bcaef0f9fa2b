package pgrad_test

import (
	"fmt"

	"github.com/katalvlaran/blayer/pgrad"
)

// ExampleSample evaluates the midway transition at a few stations.
func ExampleSample() {
	c, err := pgrad.Sample([]float64{0, 5, 10}, pgrad.Snap(0.503))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for k, x := range c.X {
		fmt.Printf("x=%g dp=%.3f delta=%.3f\n", x, c.Gradient[k], c.Thickness[k])
	}
	// Output:
	// x=0 dp=2.000 delta=0.100
	// x=5 dp=3.000 delta=0.112
	// x=10 dp=6.500 delta=0.258
}
