// internal/ui/button.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"syringe-defense/internal/config"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       rl.Rectangle
	Text       string
	TextColor  rl.Color
	BgColor    rl.Color
	HoverColor rl.Color
	Font       rl.Font
	FontSize   float32
}

// NewButton создает новую кнопку.
func NewButton(rect rl.Rectangle, text string, font rl.Font) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  ColorToRL(config.TextDarkColor),
		BgColor:    ColorToRL(config.ButtonColor),
		HoverColor: ColorToRL(config.ButtonHover),
		Font:       font,
		FontSize:   24,
	}
}

// CenteredButton — кнопка шириной w и высотой h по центру экрана со смещением dy.
func CenteredButton(screenW, screenH int, w, h, dy float32, text string, font rl.Font) *Button {
	x := (float32(screenW) - w) / 2
	y := (float32(screenH)-h)/2 + dy
	return NewButton(rl.NewRectangle(x, y, w, h), text, font)
}

// Contains — попадает ли точка в кнопку.
func (b *Button) Contains(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, b.Rect)
}

// IsClicked проверяет, был ли сделан клик по кнопке.
func (b *Button) IsClicked(mousePos rl.Vector2) bool {
	return b.Contains(mousePos) && rl.IsMouseButtonPressed(rl.MouseButtonLeft)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(mousePos rl.Vector2) {
	bgColor := b.BgColor
	if b.Contains(mousePos) {
		bgColor = b.HoverColor
	}

	rl.DrawRectangleRec(b.Rect, bgColor)
	rl.DrawRectangleLinesEx(b.Rect, 2, rl.DarkGray)

	textSize := rl.MeasureTextEx(b.Font, b.Text, b.FontSize, 1)
	textX := b.Rect.X + (b.Rect.Width-textSize.X)/2
	textY := b.Rect.Y + (b.Rect.Height-textSize.Y)/2

	rl.DrawTextEx(b.Font, b.Text, rl.NewVector2(textX, textY), b.FontSize, 1, b.TextColor)
}
