// internal/system/input.go
package system

import (
	"fmt"

	"syringe-defense/internal/event"
	"syringe-defense/internal/input"
)

// InputSystem раз в кадр превращает состояние устройств в события
// MOVE, SHOOT и DRAG_*.
type InputSystem struct {
	eventDispatcher *event.Dispatcher
	keys            [len(input.Keys)]bool
	devices         []input.Device

	pointerDown bool
	wasDown     bool
	pressed     bool // было нажатие с прошлого Update
	released    bool // было отпускание с прошлого Update
	pointerX    float64
	pointerY    float64
}

func NewInputSystem(eventDispatcher *event.Dispatcher) *InputSystem {
	return &InputSystem{eventDispatcher: eventDispatcher}
}

// Attach подключает устройство. Ошибка подключения возвращается вызывающему.
func (s *InputSystem) Attach(d input.Device) error {
	if err := d.Bind(s); err != nil {
		return fmt.Errorf("bind input device: %w", err)
	}
	s.devices = append(s.devices, d)
	return nil
}

// SetKey реализует input.Sink.
func (s *InputSystem) SetKey(k input.Key, down bool) {
	if !k.Valid() {
		return
	}
	s.keys[k] = down
}

// KeyDown — текущее состояние клавиши.
func (s *InputSystem) KeyDown(k input.Key) bool {
	return k.Valid() && s.keys[k]
}

func (s *InputSystem) PointerDown(x, y float64) {
	s.pointerDown = true
	s.pressed = true
	s.pointerX, s.pointerY = x, y
}

func (s *InputSystem) PointerMove(x, y float64) {
	s.pointerX, s.pointerY = x, y
}

func (s *InputSystem) PointerUp() {
	s.pointerDown = false
	s.released = true
}

func axis(pos, neg bool) float64 {
	v := 0.0
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

func (s *InputSystem) Update() {
	move := event.MovePayload{
		X: axis(s.keys[input.KeyRight], s.keys[input.KeyLeft]),
		Y: axis(s.keys[input.KeyUp], s.keys[input.KeyDown]),
	}
	if move.X != 0 || move.Y != 0 {
		s.eventDispatcher.Publish(event.Move, move)
	}
	if s.keys[input.KeyShoot] {
		s.eventDispatcher.Publish(event.Shoot, nil)
	}

	pos := event.DragPayload{X: s.pointerX, Y: s.pointerY}
	switch {
	case s.wasDown && s.released:
		s.eventDispatcher.Publish(event.DragEnd, nil)
		if s.pointerDown {
			// отпустили и снова нажали за один кадр
			s.eventDispatcher.Publish(event.DragStart, pos)
		}
	case !s.wasDown && s.pressed:
		s.eventDispatcher.Publish(event.DragStart, pos)
		if !s.pointerDown {
			// короткое касание внутри кадра
			s.eventDispatcher.Publish(event.DragEnd, nil)
		}
	case s.pointerDown:
		s.eventDispatcher.Publish(event.DragMove, pos)
	}
	s.wasDown = s.pointerDown
	s.pressed = false
	s.released = false
}

// Reset забывает переходы, накопленные без Update (например, клик по
// кнопке рестарта). Удерживаемый указатель не начнёт новое перетаскивание.
func (s *InputSystem) Reset() {
	s.wasDown = s.pointerDown
	s.pressed = false
	s.released = false
}

// Cleanup отключает все устройства.
func (s *InputSystem) Cleanup() {
	for _, d := range s.devices {
		d.Unbind()
	}
	s.devices = nil
	s.keys = [len(input.Keys)]bool{}
	s.pointerDown = false
	s.Reset()
}
