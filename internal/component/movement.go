// internal/component/movement.go
package component

// Vec2 — точка или вектор на плоскости мира
type Vec2 struct {
	X, Y float64
}

// V — короткий конструктор Vec2.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// IsZero — нулевой ли вектор.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Velocity — компонент скорости вдоль оси Y (пули вверх, медсёстры вниз)
type Velocity struct {
	Speed float64
}

// Step — смещение за dt.
func (v Velocity) Step(dt float64) float64 {
	return v.Speed * dt
}
