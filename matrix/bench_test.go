// Package matrix_test provides benchmarks for the Dense buffer operations
// that sit on the stepper's hot path, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"
)

// benchShapes are (rows, cols) grid sizes to benchmark.
var benchShapes = [][2]int{{50, 100}, {200, 400}, {500, 1000}}

// sink to defeat dead-code elimination
var sinkF []float64

func BenchmarkCopyFrom(b *testing.B) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			src := mustDense(b, s[0], s[1])
			dst := mustDense(b, s[0], s[1])
			fillDenseRand(src, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := dst.CopyFrom(src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCopyCol(b *testing.B) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			m := mustDense(b, s[0], s[1])
			fillDenseRand(m, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := m.CopyCol(s[1]-1, s[1]-2); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCol(b *testing.B) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			m := mustDense(b, s[0], s[1])
			fillDenseRand(m, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				col, err := m.Col(s[1] / 2)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = col
			}
		})
	}
}
