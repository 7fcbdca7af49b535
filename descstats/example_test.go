package descstats_test

import (
	"fmt"

	"github.com/katalvlaran/binhint/descstats"
)

// ExampleIQR demonstrates the inclusive quartile convention:
// for 1..5 the quartiles interpolate to Q1=2 and Q3=4.
func ExampleIQR() {
	data := []float64{5, 3, 1, 4, 2} // order does not matter

	fmt.Printf("IQR=%.1f\n", descstats.IQR(data))
	// Output:
	// IQR=2.0
}

// ExampleStdDev shows the degenerate-data contract: all-equal input
// yields exactly zero, never NaN.
func ExampleStdDev() {
	fmt.Printf("spread=%.1f\n", descstats.StdDev([]float64{5, 5, 5, 5, 5}))
	fmt.Printf("range=%.1f\n", descstats.Range([]float64{5, 5, 5, 5, 5}))
	// Output:
	// spread=0.0
	// range=0.0
}
