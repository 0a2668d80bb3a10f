package component

import (
	"math/rand"
	"testing"

	"syringe-defense/internal/render/rendertest"
)

func TestNewTransformDefaults(t *testing.T) {
	tr := NewTransform()
	if tr.Scale != (Vec2{1, 1}) {
		t.Errorf("Expected unit scale, got %v", tr.Scale)
	}
	if !tr.Position.IsZero() || tr.Depth != 0 || tr.Rotation != 0 {
		t.Errorf("Expected zero position/depth/rotation, got %+v", tr)
	}
}

func TestSetScaleClampsNegative(t *testing.T) {
	tr := NewTransform()
	tr.SetScale(-2, 3)
	if tr.Scale.X != 0 || tr.Scale.Y != 3 {
		t.Errorf("Expected (0,3), got %v", tr.Scale)
	}
}

func TestApplyCopiesEveryField(t *testing.T) {
	tr := NewTransform()
	tr.Position = V(1.5, -2)
	tr.Depth = -0.5
	tr.Rotation = 0.25
	tr.SetScale(2, 4)
	v := &rendertest.Visual{}

	tr.Apply(v)

	if v.X != 1.5 || v.Y != -2 || v.Depth != -0.5 || v.Rotation != 0.25 || v.ScaleX != 2 || v.ScaleY != 4 {
		t.Errorf("Visual not synced with transform: %+v", v)
	}
	if v.Applied != 1 {
		t.Errorf("Expected 1 apply, got %d", v.Applied)
	}
}

func TestApplyNilVisual(t *testing.T) {
	tr := NewTransform()
	tr.Apply(nil)
}

func TestOverlapsBasic(t *testing.T) {
	a := Box{Center: V(0, 0), HalfW: 1, HalfH: 1}
	cases := []struct {
		name string
		b    Box
		want bool
	}{
		{"same", Box{Center: V(0, 0), HalfW: 1, HalfH: 1}, true},
		{"partial", Box{Center: V(1.5, 0.5), HalfW: 1, HalfH: 1}, true},
		{"touching edge", Box{Center: V(2, 0), HalfW: 1, HalfH: 1}, false},
		{"apart x", Box{Center: V(3, 0), HalfW: 1, HalfH: 1}, false},
		{"apart y", Box{Center: V(0, -2.5), HalfW: 1, HalfH: 1}, false},
		{"contained", Box{Center: V(0.1, 0.1), HalfW: 0.1, HalfH: 0.1}, true},
	}
	for _, tc := range cases {
		if got := a.Overlaps(tc.b); got != tc.want {
			t.Errorf("%s: Expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	box := func() Box {
		return Box{
			Center: V(rng.Float64()*10-5, rng.Float64()*10-5),
			HalfW:  rng.Float64() * 3,
			HalfH:  rng.Float64() * 3,
		}
	}
	for i := 0; i < 2000; i++ {
		a, b := box(), box()
		if a.Overlaps(b) != b.Overlaps(a) {
			t.Fatalf("Asymmetric overlap for %+v and %+v", a, b)
		}
	}
}

func TestBoxForUsesHalfScaledExtents(t *testing.T) {
	tr := NewTransform()
	tr.Position = V(1, 2)
	tr.SetUniformScale(4)
	b := BoxFor(&tr, 1, 0.5)
	if b.Center != V(1, 2) || b.HalfW != 2 || b.HalfH != 1 {
		t.Errorf("Unexpected box %+v", b)
	}
}
