package entity

import (
	"log"

	"syringe-defense/internal/component"
	"syringe-defense/internal/config"
	"syringe-defense/internal/event"
	"syringe-defense/internal/render"
	"syringe-defense/internal/utils"
)

// Syringe — игрок. Двигается по MOVE, стреляет оттяжкой: зажать указатель,
// увести вниз под шприц и отпустить. Чем сильнее оттяжка, тем быстрее пуля.
type Syringe struct {
	Base
	bus      *event.Dispatcher
	dragging bool
	pullBack float64
	cooldown float64
}

// NewSyringe создаёт игрока и подписывает его на ввод.
func NewSyringe(bus *event.Dispatcher) *Syringe {
	s := &Syringe{
		Base: newBase(KindPlayer, render.VisualSpec{
			Asset:  config.SyringeAsset,
			Width:  config.SyringeSize,
			Height: config.SyringeSize,
		}),
		bus: bus,
	}
	s.transform.Position.Y = config.SyringeBaseY
	bus.Subscribe(event.Move, s)
	bus.Subscribe(event.DragStart, s)
	bus.Subscribe(event.DragMove, s)
	bus.Subscribe(event.DragEnd, s)
	return s
}

// OnEvent реализует интерфейс event.Listener.
func (s *Syringe) OnEvent(e event.Event) {
	if !s.Ready() {
		return
	}
	switch e.Type {
	case event.Move:
		if p, ok := e.Data.(event.MovePayload); ok && !s.dragging {
			s.transform.Position.X = utils.Clamp(
				s.transform.Position.X+p.X*config.SyringeMoveStep,
				config.SyringeMinX, config.SyringeMaxX,
			)
		}
	case event.DragStart:
		s.dragging = true
		if p, ok := e.Data.(event.DragPayload); ok {
			s.drag(p)
		}
	case event.DragMove:
		if p, ok := e.Data.(event.DragPayload); ok {
			s.drag(p)
		}
	case event.DragEnd:
		s.release()
	}
}

// drag переводит нормализованную точку в мир: x слева направо,
// y сверху вниз (верх экрана +14, низ -14).
func (s *Syringe) drag(p event.DragPayload) {
	if !s.dragging {
		return
	}
	x := p.X*config.DragWorldWidth - config.DragWorldWidth/2
	y := config.DragWorldHeight/2 - p.Y*config.DragWorldHeight
	s.transform.Position.X = utils.Clamp(x, config.SyringeMinX, config.SyringeMaxX)
	s.pullBack = utils.Clamp(config.SyringeBaseY-y, 0, config.MaxPullBack)
}

func (s *Syringe) release() {
	if s.dragging && s.pullBack > config.FireThreshold && s.cooldown <= 0 {
		pos := s.transform.Position
		bullet := NewBullet(s.bus, pos, s.pullBack)
		s.cooldown = config.FireCooldown
		log.Printf("syringe fired bullet %s at (%.2f, %.2f), pull-back %.2f", bullet.ID().Short(), pos.X, pos.Y, s.pullBack)
		s.bus.Publish(event.BulletFired, bullet)
	}
	s.dragging = false
	s.pullBack = 0
}

// PullBack — текущая оттяжка в мировых единицах.
func (s *Syringe) PullBack() float64 { return s.pullBack }

// Dragging — зажат ли указатель.
func (s *Syringe) Dragging() bool { return s.dragging }

// Cooldown — сколько секунд осталось до следующего выстрела.
func (s *Syringe) Cooldown() float64 { return s.cooldown }

// ResetGesture бросает незавершённое перетаскивание и перезарядку без
// выстрела. Шприц опускается на базовую высоту, x сохраняется.
func (s *Syringe) ResetGesture() {
	s.dragging = false
	s.pullBack = 0
	s.cooldown = 0
	s.transform.Position.Y = config.SyringeBaseY
}

func (s *Syringe) Update(dt float64) {
	if !s.Ready() {
		return
	}
	s.Base.Update(dt)
	s.transform.Position.Y = config.SyringeBaseY + s.pullBack*config.SyringeLiftPerPull
	if s.cooldown > 0 {
		s.cooldown = max(0, s.cooldown-dt)
	}
}

var _ GameObject = (*Syringe)(nil)
var _ event.Listener = (*Syringe)(nil)

// Position — короткий доступ для логов и тестов.
func (s *Syringe) Position() component.Vec2 { return s.transform.Position }
