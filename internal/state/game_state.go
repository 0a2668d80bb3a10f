// internal/state/game_state.go
package state

import (
	"context"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	game "syringe-defense/internal/app"
	"syringe-defense/internal/audio"
	"syringe-defense/internal/config"
	"syringe-defense/internal/event"
	"syringe-defense/internal/render"
	"syringe-defense/internal/render/rlrender"
	"syringe-defense/internal/ui"
)

// Убеждаемся, что GameState соответствует интерфейсу State
var _ State = (*GameState)(nil)

// GameState — состояние игры
type GameState struct {
	sm        *StateMachine
	game      *game.Game
	renderer  *rlrender.Renderer
	input     *rlrender.Input
	frames    *render.FrameQueue
	sounds    *audio.SoundManager
	font      rl.Font
	restart   *ui.Button
	indicator *ui.StateIndicator
	score     *ui.ScoreIndicator
}

// NewGameState собирает игру поверх окна raylib и запускает её.
// Окно должно быть уже открыто.
func NewGameState(sm *StateMachine, settings config.Settings, font rl.Font) (*GameState, error) {
	width, height := rl.GetScreenWidth(), rl.GetScreenHeight()
	renderer := rlrender.New(settings.AssetDir, settings.AllowFallback, width, height)
	frames := &render.FrameQueue{}

	gameLogic := game.NewGame(game.Options{
		Renderer:  renderer,
		Scheduler: frames,
		Seed:      settings.Seed,
	})
	gameLogic.Resize(width, height)

	input := rlrender.NewInput(renderer)
	if err := gameLogic.AttachInput(input); err != nil {
		return nil, err
	}

	gs := &GameState{
		sm:        sm,
		game:      gameLogic,
		renderer:  renderer,
		input:     input,
		frames:    frames,
		sounds:    audio.NewSoundManager(),
		font:      font,
		restart:   ui.CenteredButton(width, height, 200, 60, 80, "Restart", font),
		indicator: ui.NewStateIndicator(float32(width-config.IndicatorOffsetX), config.IndicatorOffsetX, config.IndicatorRadius),
		score:     ui.NewScoreIndicator(float32(width)/2, 20, 40),
	}

	if settings.Sound {
		if err := gs.sounds.Initialize(); err != nil {
			log.Printf("WARNING: sound disabled: %v", err)
		} else {
			gs.sounds.Bind(gameLogic.EventDispatcher)
		}
	}
	gameLogic.EventDispatcher.Subscribe(event.NurseDestroyed, event.HandlerFunc(func(event.Event) {
		gs.indicator.Pulse()
	}))

	if err := gameLogic.Start(context.Background()); err != nil {
		gs.Cleanup()
		return nil, fmt.Errorf("start game: %w", err)
	}
	return gs, nil
}

// GetGame — игра этого состояния.
func (g *GameState) GetGame() *game.Game { return g.game }

// Enter продолжает игру после паузы.
func (g *GameState) Enter() {
	if err := g.game.Start(context.Background()); err != nil {
		log.Printf("ERROR: resume game: %v", err)
	}
}

// Pause останавливает цикл игры; кадр на экране остаётся.
func (g *GameState) Pause() {
	g.game.Stop()
}

func (g *GameState) Update(deltaTime float64) {
	if rl.IsWindowResized() {
		g.resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	if g.game.GameOver() {
		if g.restart.IsClicked(rl.GetMousePosition()) || rl.IsKeyPressed(rl.KeyR) {
			g.restartGame()
		}
	} else if rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g, g.font))
		return
	}

	g.input.Poll()
	g.frames.Tick()
}

func (g *GameState) restartGame() {
	log.Println("Restarting game...")
	if err := g.game.Reset(context.Background()); err != nil {
		log.Printf("ERROR: restart game: %v", err)
	}
}

func (g *GameState) resize(width, height int) {
	g.renderer.Resize(width, height)
	g.game.Resize(width, height)
	g.restart = ui.CenteredButton(width, height, 200, 60, 80, "Restart", g.font)
	g.indicator.X = float32(width - config.IndicatorOffsetX)
	g.score.X = float32(width) / 2
}

func (g *GameState) Draw() {
	g.renderer.Draw()
}

// DrawUI рисует счёт, индикатор и экран конца игры
func (g *GameState) DrawUI() {
	stateColor := config.RunningColor
	if g.game.GameOver() {
		stateColor = config.GameOverColor
	}
	g.indicator.Draw(stateColor)
	g.score.Draw(g.game.Score(), g.font)

	if !g.game.GameOver() {
		return
	}
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	rl.DrawRectangle(0, 0, w, h, ui.ColorToRL(config.OverlayColor))
	drawCentered(g.font, "GAME OVER", float32(w)/2, float32(h)/2-80, 48, ui.ColorToRL(config.GameOverColor))
	drawCentered(g.font, fmt.Sprintf("Score: %d", g.game.Score()), float32(w)/2, float32(h)/2-20, 28, ui.ColorToRL(config.TextLightColor))
	g.restart.Draw(rl.GetMousePosition())
}

func (g *GameState) Exit() {}

// Cleanup освобождает звук, текстуры и подписки.
func (g *GameState) Cleanup() {
	g.sounds.Cleanup()
	g.game.Cleanup()
}

func drawCentered(font rl.Font, text string, x, y, size float32, c rl.Color) {
	textSize := rl.MeasureTextEx(font, text, size, 1)
	rl.DrawTextEx(font, text, rl.NewVector2(x-textSize.X/2, y), size, 1, c)
}
