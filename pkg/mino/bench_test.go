package mino

import "testing"

func BenchmarkGenerate(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	s := NewPieceSet()
	for n := 0; n < b.N; n++ {
		for _, d := range setCounts {
			if err := s.Generate(d.Order); err != nil {
				b.Errorf("failed to generate pieces of order %d: %s", d.Order, err)
			}

			if s.Count() != d.Rotated {
				b.Errorf("order %d: expected %d pieces, got %d", d.Order, d.Rotated, s.Count())
			}
		}
	}
}

func BenchmarkConnected(b *testing.B) {
	p := PieceFromIndices([]int{0, 1, 2, 7, 12}, 5)

	b.ReportAllocs()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		Connected(p)
	}
}
