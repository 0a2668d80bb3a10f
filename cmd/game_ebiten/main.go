// cmd/game_ebiten/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "syringe-defense/internal/app"
	"syringe-defense/internal/audio"
	"syringe-defense/internal/config"
	"syringe-defense/internal/render"
	"syringe-defense/internal/render/ebitenrender"
)

// AppGame связывает ядро игры с циклом ebiten.
type AppGame struct {
	game     *game.Game
	renderer *ebitenrender.Renderer
	input    *ebitenrender.Input
	frames   *render.FrameQueue
	hud      *ebitenrender.HUD
	sounds   *audio.SoundManager
	width    int
	height   int
	paused   bool
	started  bool
}

func newAppGame(settings config.Settings) (*AppGame, error) {
	renderer := ebitenrender.New(settings.AssetDir, settings.AllowFallback, settings.WindowWidth, settings.WindowHeight)
	frames := &render.FrameQueue{}
	g := game.NewGame(game.Options{
		Renderer:  renderer,
		Scheduler: frames,
		Seed:      settings.Seed,
	})
	g.Resize(settings.WindowWidth, settings.WindowHeight)

	in := ebitenrender.NewInput(renderer)
	if err := g.AttachInput(in); err != nil {
		return nil, err
	}

	a := &AppGame{
		game:     g,
		renderer: renderer,
		input:    in,
		frames:   frames,
		hud:      ebitenrender.NewHUD(),
		sounds:   audio.NewSoundManager(),
		width:    settings.WindowWidth,
		height:   settings.WindowHeight,
	}
	if settings.Sound {
		if err := a.sounds.Initialize(); err != nil {
			log.Printf("WARNING: sound disabled: %v", err)
		} else {
			a.sounds.Bind(g.EventDispatcher)
		}
	}
	return a, nil
}

func (a *AppGame) Update() error {
	// Текстуры ebiten грузим уже внутри цикла
	if !a.started {
		if err := a.game.Start(context.Background()); err != nil {
			return fmt.Errorf("start game: %w", err)
		}
		a.started = true
	}

	switch {
	case a.game.GameOver():
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			if err := a.game.Reset(context.Background()); err != nil {
				return fmt.Errorf("restart game: %w", err)
			}
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		a.paused = !a.paused
		if a.paused {
			a.game.Stop()
		} else if err := a.game.Start(context.Background()); err != nil {
			return err
		}
	}

	a.input.Poll()
	a.frames.Tick()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	a.renderer.Draw(screen)
	a.hud.Draw(screen, a.game.Score(), a.game.GameOver(), a.paused)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.renderer.Resize(outsideWidth, outsideHeight)
		a.game.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (a *AppGame) Cleanup() {
	a.sounds.Cleanup()
	a.game.Cleanup()
}

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

	app, err := newAppGame(settings)
	if err != nil {
		log.Fatal(err)
	}
	defer app.Cleanup()

	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle("Syringe Defense")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
