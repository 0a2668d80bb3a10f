package render

import "sort"

// Sprite — Visual поверх текстуры конкретного бэкенда.
type Sprite[T any] struct {
	Texture  T
	Asset    string
	W, H     float64
	X, Y     float64
	Depth    float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
}

// NewSprite создаёт спрайт с единичным масштабом.
func NewSprite[T any](tex T, spec VisualSpec) *Sprite[T] {
	return &Sprite[T]{
		Texture: tex,
		Asset:   spec.Asset,
		W:       spec.Width,
		H:       spec.Height,
		ScaleX:  1,
		ScaleY:  1,
	}
}

func (s *Sprite[T]) SetTransform(x, y, depth, rotation, scaleX, scaleY float64) {
	s.X, s.Y = x, y
	s.Depth = depth
	s.Rotation = rotation
	s.ScaleX, s.ScaleY = scaleX, scaleY
}

func (s *Sprite[T]) Size() (float64, float64) {
	return s.W, s.H
}

// Extent — размер на экране в мировых единицах с учётом масштаба.
func (s *Sprite[T]) Extent() (float64, float64) {
	return s.W * s.ScaleX, s.H * s.ScaleY
}

// Graph — граф отрисовки: уникальные спрайты в порядке добавления.
type Graph[T any] struct {
	sprites []*Sprite[T]
}

// Add добавляет спрайт; чужие Visual и повторы игнорируются.
func (g *Graph[T]) Add(v Visual) bool {
	s, ok := v.(*Sprite[T])
	if !ok || g.index(s) >= 0 {
		return false
	}
	g.sprites = append(g.sprites, s)
	return true
}

// Remove убирает спрайт, если он есть.
func (g *Graph[T]) Remove(v Visual) bool {
	s, ok := v.(*Sprite[T])
	if !ok {
		return false
	}
	i := g.index(s)
	if i < 0 {
		return false
	}
	g.sprites = append(g.sprites[:i], g.sprites[i+1:]...)
	return true
}

func (g *Graph[T]) index(s *Sprite[T]) int {
	for i, cur := range g.sprites {
		if cur == s {
			return i
		}
	}
	return -1
}

// Len — число спрайтов в графе.
func (g *Graph[T]) Len() int { return len(g.sprites) }

// DrawList возвращает спрайты от дальних к ближним (по Depth),
// при равной глубине сохраняется порядок добавления.
func (g *Graph[T]) DrawList() []*Sprite[T] {
	list := make([]*Sprite[T], len(g.sprites))
	copy(list, g.sprites)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Depth < list[j].Depth
	})
	return list
}

// Clear удаляет все спрайты и возвращает их, чтобы бэкенд освободил текстуры.
func (g *Graph[T]) Clear() []*Sprite[T] {
	out := g.sprites
	g.sprites = nil
	return out
}
