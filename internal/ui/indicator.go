// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// StateIndicator — кружок состояния игры, вспыхивает при попадании.
type StateIndicator struct {
	X, Y      float32
	Radius    float32
	lastPulse time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Pulse запускает анимацию вспышки.
func (i *StateIndicator) Pulse() {
	i.lastPulse = time.Now()
}

// PulseScale — множитель радиуса: 1.3 сразу после Pulse, затем к 1.
func PulseScale(elapsed time.Duration) float64 {
	return 1.0 + 0.3*math.Exp(-elapsed.Seconds()*8)
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(stateColor color.RGBA) {
	currentRadius := i.Radius * float32(PulseScale(time.Since(i.lastPulse)))

	rl.DrawCircleV(rl.NewVector2(i.X, i.Y), currentRadius, ColorToRL(stateColor))
	rl.DrawCircleLines(int32(i.X), int32(i.Y), currentRadius, rl.White)
}

// ColorToRL преобразует color.RGBA в rl.Color
func ColorToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
