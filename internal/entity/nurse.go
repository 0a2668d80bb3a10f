package entity

import (
	"syringe-defense/internal/component"
	"syringe-defense/internal/config"
	"syringe-defense/internal/event"
	"syringe-defense/internal/render"
	"syringe-defense/internal/utils"
)

// Random — источник случайной позиции появления.
type Random interface {
	Range(lo, hi float64) float64
}

// RobotNurse — враг. Идёт вниз по коридору, растёт по мере приближения
// и выходит на передний план. Ниже NurseBottomY один раз сообщает
// NURSE_REACHED_BOTTOM.
type RobotNurse struct {
	Base
	bus           *event.Dispatcher
	velocity      component.Velocity
	reachedBottom bool
}

// NewRobotNurse — медсестра наверху коридора со случайным x.
func NewRobotNurse(bus *event.Dispatcher, rng Random) *RobotNurse {
	n := &RobotNurse{
		Base: newBase(KindEnemy, render.VisualSpec{
			Asset:  config.NurseAsset,
			Width:  config.NurseSize,
			Height: config.NurseSize,
		}),
		bus:      bus,
		velocity: component.Velocity{Speed: config.NurseSpeed},
	}
	x := rng.Range(config.NurseSpawnMinX, config.NurseSpawnMaxX)
	n.transform.Position = component.V(x, config.NurseSpawnY)
	n.transform.Depth = nurseDepth(config.NurseSpawnY)
	n.transform.SetUniformScale(nurseScale(config.NurseSpawnY))
	return n
}

// nurseScale: 4 до линии NurseScaleFromY, дальше линейно до 10 у дна.
func nurseScale(y float64) float64 {
	p := utils.Progress(y, config.NurseScaleFromY, config.NurseBottomY)
	return utils.Lerp(config.NurseStartScale, config.NurseEndScale, p)
}

// nurseDepth: -1 в точке появления, 0 у дна.
func nurseDepth(y float64) float64 {
	p := utils.Progress(y, config.NurseSpawnY, config.NurseBottomY)
	return utils.Lerp(config.NurseFarDepth, config.NurseNearDepth, p)
}

func (n *RobotNurse) Update(dt float64) {
	if !n.Ready() {
		return
	}
	n.Base.Update(dt)
	n.transform.SetUniformScale(nurseScale(n.transform.Position.Y))
	n.transform.Position.Y -= n.velocity.Step(dt)
	n.transform.Depth = nurseDepth(n.transform.Position.Y)

	if n.transform.Position.Y < config.NurseBottomY && !n.reachedBottom {
		n.reachedBottom = true
		n.bus.Publish(event.NurseReachedBottom, n)
	}
}

var _ GameObject = (*RobotNurse)(nil)
