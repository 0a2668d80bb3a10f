package entity

import (
	"syringe-defense/internal/component"
	"syringe-defense/internal/config"
	"syringe-defense/internal/render"
)

// Obstacle — неподвижная декорация, в коллизиях не участвует.
type Obstacle struct {
	Base
}

func NewObstacle(pos component.Vec2) *Obstacle {
	o := &Obstacle{
		Base: newBase(KindObstacle, render.VisualSpec{
			Asset:  config.ObstacleAsset,
			Width:  config.ObstacleSize,
			Height: config.ObstacleSize,
		}),
	}
	o.transform.Position = pos
	return o
}

var _ GameObject = (*Obstacle)(nil)
