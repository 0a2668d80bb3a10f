package ui

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"syringe-defense/internal/config"
)

// ScoreIndicator отображает счёт с обводкой.
type ScoreIndicator struct {
	X, Y             float32
	FontSize         float32
	Color            rl.Color
	OutlineColor     rl.Color
	OutlineThickness int32
}

// NewScoreIndicator создает новый индикатор счёта. X — центр текста.
func NewScoreIndicator(x, y, fontSize float32) *ScoreIndicator {
	return &ScoreIndicator{
		X:                x,
		Y:                y,
		FontSize:         fontSize,
		Color:            ColorToRL(config.TextLightColor),
		OutlineColor:     ColorToRL(config.TextDarkColor),
		OutlineThickness: 2,
	}
}

// Draw отрисовывает счёт на экране.
func (i *ScoreIndicator) Draw(score int, font rl.Font) {
	text := strconv.Itoa(score)

	textSize := rl.MeasureTextEx(font, text, i.FontSize, 1)
	textX := i.X - textSize.X/2
	textY := i.Y

	// Рисуем обводку
	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			rl.DrawTextEx(font, text, rl.NewVector2(textX+float32(x), textY+float32(y)), i.FontSize, 1, i.OutlineColor)
		}
	}

	rl.DrawTextEx(font, text, rl.NewVector2(textX, textY), i.FontSize, 1, i.Color)
}
