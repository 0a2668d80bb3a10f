// Package ebitenrender — бэкенд отрисовки на ebiten.
package ebitenrender

import (
	"context"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"syringe-defense/internal/assets"
	"syringe-defense/internal/config"
	"syringe-defense/internal/render"
)

// Renderer хранит граф спрайтов и рисует его на *ebiten.Image.
type Renderer struct {
	textures      *assets.TextureManager[*ebiten.Image]
	graph         render.Graph[*ebiten.Image]
	camera        render.Camera
	frame         []*render.Sprite[*ebiten.Image]
	pixel         *ebiten.Image
	allowFallback bool
}

func New(assetDir string, allowFallback bool, screenWidth, screenHeight int) *Renderer {
	return &Renderer{
		textures:      assets.NewTextureManager(assetDir, loadImage, (*ebiten.Image).Deallocate),
		camera:        render.Camera{ScreenWidth: float64(screenWidth), ScreenHeight: float64(screenHeight)},
		allowFallback: allowFallback,
	}
}

func loadImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	return img, err
}

func (r *Renderer) CreateVisual(ctx context.Context, spec render.VisualSpec) (render.Visual, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := r.textures.Get(spec.Asset)
	if err != nil {
		if !r.allowFallback {
			return nil, err
		}
		log.Printf("WARNING: %v, drawing %s as a rectangle", err, spec.Asset)
		img = nil
	}
	return render.NewSprite(img, spec), nil
}

func (r *Renderer) Add(v render.Visual)    { r.graph.Add(v) }
func (r *Renderer) Remove(v render.Visual) { r.graph.Remove(v) }

func (r *Renderer) SetProjection(p render.Projection) {
	r.camera.Projection = p
}

func (r *Renderer) Resize(width, height int) {
	r.camera.ScreenWidth = float64(width)
	r.camera.ScreenHeight = float64(height)
}

func (r *Renderer) Camera() render.Camera { return r.camera }

func (r *Renderer) Render() {
	r.frame = r.graph.DrawList()
}

// Draw рисует последний снятый кадр на screen.
func (r *Renderer) Draw(screen *ebiten.Image) {
	for _, s := range r.frame {
		img := s.Texture
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		if img == nil {
			img = r.fallbackPixel()
			op.ColorScale.ScaleWithColor(fallbackColor(s.Asset))
		}
		b := img.Bounds()
		op.GeoM = placement(r.camera, s, float64(b.Dx()), float64(b.Dy()))
		screen.DrawImage(img, op)
	}
}

func (r *Renderer) fallbackPixel() *ebiten.Image {
	if r.pixel == nil {
		r.pixel = ebiten.NewImage(1, 1)
		r.pixel.Fill(color.White)
	}
	return r.pixel
}

func (r *Renderer) Release() {
	r.graph.Clear()
	r.frame = nil
	r.textures.Cleanup()
	if r.pixel != nil {
		r.pixel.Deallocate()
		r.pixel = nil
	}
}

// placement растягивает картинку texW×texH до размера спрайта на экране,
// поворачивает вокруг центра и переносит в его экранную позицию.
func placement(cam render.Camera, s *render.Sprite[*ebiten.Image], texW, texH float64) ebiten.GeoM {
	ppuX, ppuY := cam.PixelsPerUnit()
	w, h := s.Extent()
	cx, cy := cam.WorldToScreen(s.X, s.Y)

	var m ebiten.GeoM
	m.Translate(-texW/2, -texH/2)
	if texW > 0 && texH > 0 {
		m.Scale(w*ppuX/texW, h*ppuY/texH)
	}
	m.Rotate(-s.Rotation)
	m.Translate(cx, cy)
	return m
}

func fallbackColor(asset string) color.Color {
	if c, ok := config.FallbackColors[asset]; ok {
		return c
	}
	return color.RGBA{255, 0, 255, 255}
}

var _ render.Renderer = (*Renderer)(nil)
