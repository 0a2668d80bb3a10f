package utils

import "testing"

func TestRangeBounds(t *testing.T) {
	s := NewPRNGService(1)
	for i := 0; i < 1000; i++ {
		v := s.Range(-2, 2)
		if v < -2 || v >= 2 {
			t.Fatalf("Value %v out of [-2,2)", v)
		}
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a, b := NewPRNGService(99), NewPRNGService(99)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("Expected identical sequences for same seed")
		}
	}
}
