// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"syringe-defense/internal/config"
	"syringe-defense/internal/state"
	"syringe-defense/internal/ui"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(settings.WindowWidth), int32(settings.WindowHeight), "Syringe Defense")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0) // Esc ставит на паузу

	sm := state.NewStateMachine()
	gs, err := state.NewGameState(sm, settings, rl.GetFontDefault())
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	defer gs.Cleanup()
	sm.SetState(gs)

	lastUpdateTime := time.Now()
	for !rl.WindowShouldClose() {
		now := time.Now()
		deltaTime := now.Sub(lastUpdateTime).Seconds()
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		lastUpdateTime = now
		sm.Update(deltaTime)

		rl.BeginDrawing()
		rl.ClearBackground(ui.ColorToRL(config.BackgroundColor))
		sm.Draw()
		sm.DrawUI()
		rl.EndDrawing()
	}
}
