// Package render описывает то, что ядро игры потребляет от графического
// движка. Реализации живут в подпакетах rlrender и ebitenrender.
package render

import "context"

// VisualSpec — что нужно построить для сущности: ассет и базовый размер
// геометрии в мировых единицах (до масштаба).
type VisualSpec struct {
	Asset  string
	Width  float64
	Height float64
}

// Visual — визуальное представление одной сущности.
type Visual interface {
	SetTransform(x, y, depth, rotation, scaleX, scaleY float64)
	// Size — базовый размер геометрии без учёта масштаба.
	Size() (width, height float64)
}

// Factory создаёт визуальные представления. Может блокироваться на
// загрузке ассета; ошибка загрузки возвращается как есть.
type Factory interface {
	CreateVisual(ctx context.Context, spec VisualSpec) (Visual, error)
}

// Projection — границы ортографической камеры в мировых координатах.
type Projection struct {
	Left, Right, Top, Bottom float64
}

// Width мировой ширины кадра.
func (p Projection) Width() float64 { return p.Right - p.Left }

// Height мировой высоты кадра.
func (p Projection) Height() float64 { return p.Top - p.Bottom }

// Renderer — графический движок целиком.
type Renderer interface {
	Factory
	Add(v Visual)
	Remove(v Visual)
	SetProjection(p Projection)
	Render()
	Release()
}

// Scheduler ставит колбэк на следующий кадр хоста.
type Scheduler interface {
	RequestFrame(fn func())
}
