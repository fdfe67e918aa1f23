package matrix_test

import (
	"testing"

	"github.com/katalvlaran/stoic/matrix"
)

// benchmarkNullSpace runs NullSpace on a fixed incidence matrix.
func benchmarkNullSpace(b *testing.B, rows [][]int64, opts ...matrix.Option) {
	a, err := matrix.NewDenseFromInts(rows)
	if err != nil {
		b.Fatalf("NewDenseFromInts: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = matrix.NullSpace(a, opts...); err != nil {
			b.Fatalf("NullSpace failed: %v", err)
		}
	}
}

// BenchmarkNullSpace_Combustion benchmarks C3H8 + O2 = CO2 + H2O.
func BenchmarkNullSpace_Combustion(b *testing.B) {
	benchmarkNullSpace(b, [][]int64{
		{3, 0, -1, 0},  // C
		{8, 0, 0, -2},  // H
		{0, 2, -2, -1}, // O
	})
}

// BenchmarkNullSpace_Permanganate benchmarks a 6-element redox equation:
// KMnO4 + HCl = KCl + MnCl2 + H2O + Cl2.
func BenchmarkNullSpace_Permanganate(b *testing.B) {
	rows := [][]int64{
		{1, 0, -1, 0, 0, 0},   // K
		{1, 0, 0, -1, 0, 0},   // Mn
		{4, 0, 0, 0, -1, 0},   // O
		{0, 1, 0, 0, -2, 0},   // H
		{0, 1, -1, -2, 0, -2}, // Cl
	}
	b.Run("max-abs", func(b *testing.B) { benchmarkNullSpace(b, rows) })
	b.Run("first", func(b *testing.B) {
		benchmarkNullSpace(b, rows, matrix.WithPivoting(matrix.PivotFirst))
	})
}
