// Package scene — реестр живых игровых объектов и состояние камеры.
package scene

import (
	"context"
	"errors"
	"fmt"
	"log"

	"syringe-defense/internal/config"
	"syringe-defense/internal/entity"
	"syringe-defense/internal/render"
)

// ErrDuplicate — объект уже есть в сцене.
var ErrDuplicate = errors.New("game object already in scene")

// Scene владеет объектами от AddGameObject до RemoveGameObject.
// Порядок коллекции — порядок добавления.
type Scene struct {
	renderer   render.Renderer
	objects    []entity.GameObject
	background render.Visual
	projection render.Projection
}

// New создаёт сцену с камерой под эталонные пропорции.
func New(renderer render.Renderer) *Scene {
	s := &Scene{renderer: renderer}
	s.projection = projectionFor(config.ReferenceWidth / config.ReferenceHeight)
	renderer.SetProjection(s.projection)
	return s
}

func projectionFor(aspect float64) render.Projection {
	halfH := config.ViewHalfHeight
	halfW := halfH * aspect
	return render.Projection{Left: -halfW, Right: halfW, Top: halfH, Bottom: -halfH}
}

// Initialize готовит фон. Повторный вызов ничего не делает.
func (s *Scene) Initialize(ctx context.Context) error {
	if s.background != nil {
		return nil
	}
	bg, err := s.renderer.CreateVisual(ctx, render.VisualSpec{
		Asset:  config.BackgroundAsset,
		Width:  config.ReferenceWidth / config.PixelsPerUnit,
		Height: config.ReferenceHeight / config.PixelsPerUnit,
	})
	if err != nil {
		return fmt.Errorf("create background: %w", err)
	}
	bg.SetTransform(0, 0, config.BackgroundDepth, 0, 1, 1)
	s.renderer.Add(bg)
	s.background = bg
	return nil
}

// Background — визуал фона или nil до Initialize.
func (s *Scene) Background() render.Visual { return s.background }

// AddGameObject инициализирует объект и регистрирует его. При ошибке
// объект отбрасывается, сцена продолжает работать.
func (s *Scene) AddGameObject(ctx context.Context, obj entity.GameObject) error {
	if s.Contains(obj) {
		return fmt.Errorf("add %s %s: %w", obj.Kind(), obj.ID().Short(), ErrDuplicate)
	}
	if err := obj.Initialize(ctx, s.renderer); err != nil {
		log.Printf("WARNING: discarding %s %s: %v", obj.Kind(), obj.ID().Short(), err)
		return err
	}
	s.renderer.Add(obj.Visual())
	s.objects = append(s.objects, obj)
	return nil
}

// RemoveGameObject снимает объект с отрисовки и из коллекции.
// Отсутствующий объект — не ошибка, возвращается false.
func (s *Scene) RemoveGameObject(obj entity.GameObject) bool {
	i := s.index(obj)
	if i < 0 {
		return false
	}
	s.renderer.Remove(obj.Visual())
	s.objects = append(s.objects[:i:i], s.objects[i+1:]...)
	obj.MarkRemoved()
	return true
}

func (s *Scene) index(obj entity.GameObject) int {
	for i, cur := range s.objects {
		if cur == obj {
			return i
		}
	}
	return -1
}

// Contains — зарегистрирован ли объект.
func (s *Scene) Contains(obj entity.GameObject) bool {
	return s.index(obj) >= 0
}

// Objects возвращает копию коллекции.
func (s *Scene) Objects() []entity.GameObject {
	out := make([]entity.GameObject, len(s.objects))
	copy(out, s.objects)
	return out
}

// Len — число живых объектов.
func (s *Scene) Len() int { return len(s.objects) }

// Update обновляет объекты по снимку, снятому в начале вызова: объекты,
// добавленные во время прохода, ждут следующего кадра, удалённые сами
// пропускают обновление.
func (s *Scene) Update(dt float64) {
	for _, obj := range s.Objects() {
		obj.Update(dt)
	}
}

// Resize пересчитывает камеру: высота мира фиксирована, ширина по пропорциям окна.
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.projection = projectionFor(float64(width) / float64(height))
	s.renderer.SetProjection(s.projection)
}

// Projection — текущие границы камеры.
func (s *Scene) Projection() render.Projection { return s.projection }
