package ebitenrender

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"syringe-defense/internal/config"
)

// HUD рисует счёт, индикатор состояния и экран конца игры.
type HUD struct {
	face *text.GoXFace
}

func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUD) Draw(screen *ebiten.Image, score int, gameOver, paused bool) {
	w := float64(screen.Bounds().Dx())
	ht := float64(screen.Bounds().Dy())

	stateColor := config.RunningColor
	if gameOver {
		stateColor = config.GameOverColor
	}
	vector.DrawFilledCircle(screen,
		float32(w-config.IndicatorOffsetX), float32(config.IndicatorOffsetX),
		float32(config.IndicatorRadius), stateColor, true)

	h.print(screen, fmt.Sprintf("Score: %d", score), 10, 10)

	switch {
	case gameOver:
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(ht), config.OverlayColor, false)
		h.printCentered(screen, "GAME OVER", w/2, ht/2-20)
		h.printCentered(screen, fmt.Sprintf("Score: %d", score), w/2, ht/2)
		h.printCentered(screen, "Press R or tap to restart", w/2, ht/2+20)
	case paused:
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(ht), config.OverlayColor, false)
		h.printCentered(screen, "PAUSED", w/2, ht/2)
	}
}

func (h *HUD) print(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	text.Draw(screen, s, h.face, op)
}

func (h *HUD) printCentered(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	text.Draw(screen, s, h.face, op)
}
