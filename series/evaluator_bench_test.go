package series

import (
	"fmt"
	"testing"
)

// BenchmarkEvaluate benchmarks the exact finite path across series lengths.
func BenchmarkEvaluate(b *testing.B) {
	eval, err := New()
	if err != nil {
		b.Fatal(err)
	}

	sizes := []int{4, 64, 1024}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("Terms_%d", size), func(b *testing.B) {
			coeffs := make([]float64, size)
			for i := range coeffs {
				coeffs[i] = 1 / float64(i+1)
			}
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = eval.Evaluate(coeffs, 0.5)
			}
		})
	}
}

// BenchmarkEvaluateStream benchmarks the full streaming path, radius
// estimation included.
func BenchmarkEvaluateStream(b *testing.B) {
	eval, err := New()
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < b.N; i++ {
		ones := NewFuncSource(func(int) float64 { return 1 })
		_, _ = eval.EvaluateStream(ones, 0.9)
	}
}
