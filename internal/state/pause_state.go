// internal/state/pause_state.go
package state

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"syringe-defense/internal/config"
	"syringe-defense/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// Pausable — состояние, которое умеет останавливать свою игру.
type Pausable interface {
	Pause()
}

type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	font          rl.Font
}

func NewPauseState(sm *StateMachine, prevState State, font rl.Font) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		font:          font,
	}
}

func (s *PauseState) Enter() {
	if p, ok := s.previousState.(Pausable); ok {
		p.Pause()
	}
}

func (s *PauseState) Update(deltaTime float64) {
	if rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyEscape) || rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		// Enter предыдущего состояния продолжит игру
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw() {
	if s.previousState != nil {
		s.previousState.Draw()
	}
}

// DrawUI рисует UI для состояния паузы
func (s *PauseState) DrawUI() {
	if s.previousState != nil {
		s.previousState.DrawUI()
	}

	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	rl.DrawRectangle(0, 0, int32(w), int32(h), ui.ColorToRL(config.OverlayColor))
	drawCentered(s.font, "PAUSED", float32(w)/2, float32(h)/2-20, 40, rl.White)
}

func (s *PauseState) Exit() {}
