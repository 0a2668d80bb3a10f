// Package rlrender — бэкенд отрисовки на raylib.
package rlrender

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"syringe-defense/internal/assets"
	"syringe-defense/internal/config"
	"syringe-defense/internal/render"
	"syringe-defense/internal/ui"
)

var errWindowNotReady = errors.New("raylib window is not ready")

// Renderer хранит граф спрайтов и рисует его в окне raylib.
// Render снимает список отрисовки, Draw выводит его между
// BeginDrawing и EndDrawing.
type Renderer struct {
	textures      *assets.TextureManager[rl.Texture2D]
	graph         render.Graph[rl.Texture2D]
	camera        render.Camera
	frame         []*render.Sprite[rl.Texture2D]
	allowFallback bool
}

// New создаёт рендерер. Текстуры ищутся в assetDir.
func New(assetDir string, allowFallback bool, screenWidth, screenHeight int) *Renderer {
	return &Renderer{
		textures:      assets.NewTextureManager(assetDir, loadTexture, rl.UnloadTexture),
		camera:        render.Camera{ScreenWidth: float64(screenWidth), ScreenHeight: float64(screenHeight)},
		allowFallback: allowFallback,
	}
}

func loadTexture(path string) (rl.Texture2D, error) {
	if !rl.IsWindowReady() {
		return rl.Texture2D{}, errWindowNotReady
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return tex, fmt.Errorf("raylib could not decode %s", path)
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	return tex, nil
}

func (r *Renderer) CreateVisual(ctx context.Context, spec render.VisualSpec) (render.Visual, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tex, err := r.textures.Get(spec.Asset)
	if err != nil {
		if !r.allowFallback {
			return nil, err
		}
		log.Printf("WARNING: %v, drawing %s as a rectangle", err, spec.Asset)
		tex = rl.Texture2D{}
	}
	return render.NewSprite(tex, spec), nil
}

func (r *Renderer) Add(v render.Visual)    { r.graph.Add(v) }
func (r *Renderer) Remove(v render.Visual) { r.graph.Remove(v) }

func (r *Renderer) SetProjection(p render.Projection) {
	r.camera.Projection = p
}

// Resize подгоняет камеру под новый размер окна.
func (r *Renderer) Resize(width, height int) {
	r.camera.ScreenWidth = float64(width)
	r.camera.ScreenHeight = float64(height)
}

// Camera — текущая камера; нужна устройству ввода.
func (r *Renderer) Camera() render.Camera { return r.camera }

// Render фиксирует порядок отрисовки для следующего Draw.
func (r *Renderer) Render() {
	r.frame = r.graph.DrawList()
}

// Draw рисует последний снятый кадр.
func (r *Renderer) Draw() {
	for _, s := range r.frame {
		dest, origin, rotation := placement(r.camera, s)
		if s.Texture.ID == 0 {
			rl.DrawRectanglePro(dest, origin, rotation, ui.ColorToRL(fallbackColor(s.Asset)))
			continue
		}
		src := rl.NewRectangle(0, 0, float32(s.Texture.Width), float32(s.Texture.Height))
		rl.DrawTexturePro(s.Texture, src, dest, origin, rotation, rl.White)
	}
}

// Release выгружает текстуры и очищает граф.
func (r *Renderer) Release() {
	r.graph.Clear()
	r.frame = nil
	r.textures.Cleanup()
}

// placement считает прямоугольник на экране, точку вращения в центре
// и угол в градусах по часовой (экранная y смотрит вниз).
func placement(cam render.Camera, s *render.Sprite[rl.Texture2D]) (rl.Rectangle, rl.Vector2, float32) {
	cx, cy := cam.WorldToScreen(s.X, s.Y)
	ppuX, ppuY := cam.PixelsPerUnit()
	w, h := s.Extent()
	w, h = w*ppuX, h*ppuY
	dest := rl.NewRectangle(float32(cx), float32(cy), float32(w), float32(h))
	origin := rl.NewVector2(float32(w/2), float32(h/2))
	return dest, origin, float32(-s.Rotation * 180 / math.Pi)
}

func fallbackColor(asset string) color.RGBA {
	if c, ok := config.FallbackColors[asset]; ok {
		return c
	}
	return color.RGBA{255, 0, 255, 255}
}

var _ render.Renderer = (*Renderer)(nil)
