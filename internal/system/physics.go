// internal/system/physics.go
package system

import (
	"context"
	"log"

	"syringe-defense/internal/component"
	"syringe-defense/internal/config"
	"syringe-defense/internal/entity"
	"syringe-defense/internal/event"
	"syringe-defense/internal/scene"
)

// ScoreKeeper — то, что PhysicsSystem требует от Game.
// Это помогает избежать циклических зависимостей.
type ScoreKeeper interface {
	AddScore(points int)
	SetGameOver()
	Score() int
	GameOver() bool
}

// PhysicsSystem добавляет и убирает пули и медсестёр по событиям и каждый
// кадр ищет попадания.
type PhysicsSystem struct {
	eventDispatcher *event.Dispatcher
	scene           *scene.Scene
	keeper          ScoreKeeper
	listeners       map[event.EventType]event.Listener
}

func NewPhysicsSystem(eventDispatcher *event.Dispatcher, sc *scene.Scene, keeper ScoreKeeper) *PhysicsSystem {
	s := &PhysicsSystem{
		eventDispatcher: eventDispatcher,
		scene:           sc,
		keeper:          keeper,
	}
	s.listeners = map[event.EventType]event.Listener{
		event.BulletFired:        event.HandlerFunc(s.onBulletFired),
		event.BulletOutOfBounds:  event.HandlerFunc(s.onBulletOutOfBounds),
		event.NurseReachedBottom: event.HandlerFunc(s.onNurseReachedBottom),
	}
	for et, l := range s.listeners {
		eventDispatcher.Subscribe(et, l)
	}
	return s
}

func (s *PhysicsSystem) onBulletFired(e event.Event) {
	bullet, ok := e.Data.(entity.GameObject)
	if !ok {
		return
	}
	// Ошибка уже залогирована сценой, пуля просто пропадает.
	_ = s.scene.AddGameObject(context.Background(), bullet)
}

func (s *PhysicsSystem) onBulletOutOfBounds(e event.Event) {
	if bullet, ok := e.Data.(entity.GameObject); ok {
		s.scene.RemoveGameObject(bullet)
	}
}

func (s *PhysicsSystem) onNurseReachedBottom(e event.Event) {
	nurse, ok := e.Data.(entity.GameObject)
	if !ok {
		return
	}
	s.scene.RemoveGameObject(nurse)
	if s.keeper.GameOver() {
		return
	}
	s.keeper.SetGameOver()
	log.Printf("nurse %s reached the bottom, game over with score %d", nurse.ID().Short(), s.keeper.Score())
	s.eventDispatcher.Publish(event.GameOver, event.GameOverPayload{Score: s.keeper.Score()})
}

// Bounds — прямоугольник коллизии: центр в позиции, половины
// базового размера визуала с учётом масштаба.
func Bounds(obj entity.GameObject) (component.Box, bool) {
	v := obj.Visual()
	if v == nil {
		return component.Box{}, false
	}
	w, h := v.Size()
	return component.BoxFor(obj.Transform(), w, h), true
}

// Collides — пересекаются ли прямоугольники двух объектов.
func Collides(a, b entity.GameObject) bool {
	ba, ok := Bounds(a)
	if !ok {
		return false
	}
	bb, ok := Bounds(b)
	if !ok {
		return false
	}
	return ba.Overlaps(bb)
}

func (s *PhysicsSystem) Update(deltaTime float64) {
	var bullets, nurses []entity.GameObject
	for _, obj := range s.scene.Objects() {
		switch obj.Kind() {
		case entity.KindProjectile:
			bullets = append(bullets, obj)
		case entity.KindEnemy:
			nurses = append(nurses, obj)
		}
	}
	if len(bullets) == 0 || len(nurses) == 0 {
		return
	}

	hit := make(map[entity.GameObject]bool, len(nurses))
	for _, bullet := range bullets {
		for _, nurse := range nurses {
			if hit[nurse] || !Collides(bullet, nurse) {
				continue
			}
			hit[nurse] = true
			s.scene.RemoveGameObject(bullet)
			s.scene.RemoveGameObject(nurse)
			s.keeper.AddScore(config.ScorePerHit)
			s.eventDispatcher.Publish(event.NurseDestroyed, event.HitPayload{
				Bullet: bullet,
				Nurse:  nurse,
				Award:  config.ScorePerHit,
			})
			break
		}
	}
}

// Cleanup снимает подписки системы.
func (s *PhysicsSystem) Cleanup() {
	for et, l := range s.listeners {
		s.eventDispatcher.Unsubscribe(et, l)
	}
}
