package entity

import (
	"syringe-defense/internal/component"
	"syringe-defense/internal/config"
	"syringe-defense/internal/event"
	"syringe-defense/internal/render"
)

// Bullet — снаряд, летит вверх. За верхней границей один раз
// сообщает BULLET_OUT_OF_BOUNDS.
type Bullet struct {
	Base
	bus         *event.Dispatcher
	velocity    component.Velocity
	pullBack    float64
	outOfBounds bool
}

// NewBullet — пуля в точке pos; скорость растёт с оттяжкой.
func NewBullet(bus *event.Dispatcher, pos component.Vec2, pullBack float64) *Bullet {
	b := &Bullet{
		Base: newBase(KindProjectile, render.VisualSpec{
			Asset:  config.BulletAsset,
			Width:  config.BulletSize,
			Height: config.BulletSize,
		}),
		bus:      bus,
		velocity: component.Velocity{Speed: config.BulletBaseSpeed + pullBack*config.BulletSpeedPerPull},
		pullBack: pullBack,
	}
	b.transform.Position = pos
	return b
}

// Speed — единиц в секунду.
func (b *Bullet) Speed() float64 { return b.velocity.Speed }

// PullBack, с которой пуля была выпущена.
func (b *Bullet) PullBack() float64 { return b.pullBack }

func (b *Bullet) Update(dt float64) {
	if !b.Ready() {
		return
	}
	b.Base.Update(dt)
	b.transform.Position.Y += b.velocity.Step(dt)
	if b.transform.Position.Y > config.BulletMaxY && !b.outOfBounds {
		b.outOfBounds = true
		b.bus.Publish(event.BulletOutOfBounds, b)
	}
}

var _ GameObject = (*Bullet)(nil)
