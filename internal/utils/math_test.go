package utils

import "testing"

func TestProgressAndLerp(t *testing.T) {
	if p := Progress(-3, 4, -10); p != 0.5 {
		t.Errorf("Expected 0.5, got %v", p)
	}
	if p := Progress(8, 4, -10); p != 0 {
		t.Errorf("Expected clamp to 0, got %v", p)
	}
	if p := Progress(-20, 4, -10); p != 1 {
		t.Errorf("Expected clamp to 1, got %v", p)
	}
	if p := Progress(3, 3, 3); p != 1 {
		t.Errorf("Expected 1 for empty range, got %v", p)
	}
	if v := Lerp(4, 10, 0.5); v != 7 {
		t.Errorf("Expected 7, got %v", v)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(7, -6, 6) != 6 || Clamp(-7, -6, 6) != -6 || Clamp(1, -6, 6) != 1 {
		t.Error("Clamp out of range")
	}
}
