package component

import "syringe-defense/internal/render"

// Transform — положение, глубина, поворот и масштаб одной сущности.
// Depth влияет только на порядок отрисовки, в коллизиях не участвует.
type Transform struct {
	Position Vec2
	Depth    float64
	Rotation float64 // радианы
	Scale    Vec2
}

// NewTransform — трансформ в начале координат с единичным масштабом.
func NewTransform() Transform {
	return Transform{Scale: Vec2{1, 1}}
}

// SetScale задаёт масштаб; отрицательные компоненты обрезаются до нуля.
func (t *Transform) SetScale(x, y float64) {
	t.Scale = Vec2{X: max(x, 0), Y: max(y, 0)}
}

// SetUniformScale — одинаковый масштаб по обеим осям.
func (t *Transform) SetUniformScale(s float64) {
	t.SetScale(s, s)
}

// Apply переносит трансформ в визуальное представление.
func (t *Transform) Apply(v render.Visual) {
	if v == nil {
		return
	}
	v.SetTransform(t.Position.X, t.Position.Y, t.Depth, t.Rotation, t.Scale.X, t.Scale.Y)
}
