package component

// Box — осевой прямоугольник: центр и половины размеров.
type Box struct {
	Center Vec2
	HalfW  float64
	HalfH  float64
}

// BoxFor строит прямоугольник из трансформа и базового размера геометрии.
func BoxFor(t *Transform, width, height float64) Box {
	return Box{
		Center: t.Position,
		HalfW:  width * t.Scale.X / 2,
		HalfH:  height * t.Scale.Y / 2,
	}
}

// Overlaps — строгое пересечение AABB, симметрично: a.Overlaps(b) == b.Overlaps(a).
// Касание гранями пересечением не считается.
func (a Box) Overlaps(b Box) bool {
	return a.Center.X-a.HalfW < b.Center.X+b.HalfW &&
		a.Center.X+a.HalfW > b.Center.X-b.HalfW &&
		a.Center.Y-a.HalfH < b.Center.Y+b.HalfH &&
		a.Center.Y+a.HalfH > b.Center.Y-b.HalfH
}
