// Package rendertest — подделка графического движка для тестов ядра.
package rendertest

import (
	"context"
	"errors"
	"fmt"

	"syringe-defense/internal/render"
)

// ErrAssetMissing возвращается для ассетов из FailAssets.
var ErrAssetMissing = errors.New("asset missing")

// Visual хранит последний применённый трансформ.
type Visual struct {
	Spec                  render.VisualSpec
	X, Y, Depth, Rotation float64
	ScaleX, ScaleY        float64
	Applied               int
}

func (v *Visual) SetTransform(x, y, depth, rotation, scaleX, scaleY float64) {
	v.X, v.Y, v.Depth, v.Rotation = x, y, depth, rotation
	v.ScaleX, v.ScaleY = scaleX, scaleY
	v.Applied++
}

func (v *Visual) Size() (float64, float64) {
	return v.Spec.Width, v.Spec.Height
}

// Renderer — in-memory реализация render.Renderer.
type Renderer struct {
	FailAssets map[string]bool
	Created    []*Visual
	Live       []render.Visual
	Projection render.Projection
	Renders    int
	Released   bool
}

// New создаёт пустой поддельный рендерер.
func New() *Renderer {
	return &Renderer{FailAssets: make(map[string]bool)}
}

func (r *Renderer) CreateVisual(ctx context.Context, spec render.VisualSpec) (render.Visual, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.FailAssets[spec.Asset] {
		return nil, fmt.Errorf("load %s: %w", spec.Asset, ErrAssetMissing)
	}
	v := &Visual{Spec: spec}
	r.Created = append(r.Created, v)
	return v, nil
}

func (r *Renderer) Add(v render.Visual) {
	r.Live = append(r.Live, v)
}

func (r *Renderer) Remove(v render.Visual) {
	for i, cur := range r.Live {
		if cur == v {
			r.Live = append(r.Live[:i], r.Live[i+1:]...)
			return
		}
	}
}

// Contains — зарегистрирован ли Visual в графе.
func (r *Renderer) Contains(v render.Visual) bool {
	for _, cur := range r.Live {
		if cur == v {
			return true
		}
	}
	return false
}

func (r *Renderer) SetProjection(p render.Projection) {
	r.Projection = p
}

func (r *Renderer) Render() {
	r.Renders++
}

func (r *Renderer) Release() {
	r.Released = true
	r.Live = nil
}
