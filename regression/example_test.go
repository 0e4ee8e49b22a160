package regression_test

import (
	"fmt"
	"log"

	"github.com/arloliu/powser/regression"
)

// ExampleFit demonstrates fitting a line and evaluating it.
func ExampleFit() {
	line, err := regression.Fit([]float64{1, 2, 3, 4}, []float64{5, 6, 7, 8})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(line)
	fmt.Println(line.At(9))

	// Output:
	// y = 4 + 1*x
	// 13
}

// ExampleRSquared demonstrates scoring a fitted line.
func ExampleRSquared() {
	xs := []float64{1, 3, 2, 4}
	ys := []float64{5, 6, 7, 8}

	line, err := regression.Fit(xs, ys)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s (R²=%.2f)\n", line, regression.RSquared(line, xs, ys))

	// Output:
	// y = 4.5 + 0.8*x (R²=0.64)
}
