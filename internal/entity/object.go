// Package entity — игровые объекты: общий жизненный цикл и варианты
// (шприц, пуля, медсестра, препятствие).
package entity

import (
	"context"
	"errors"
	"fmt"

	"syringe-defense/internal/component"
	"syringe-defense/internal/render"
	"syringe-defense/internal/types"
)

// ErrAlreadyInitialized — повторный Initialize.
var ErrAlreadyInitialized = errors.New("entity already initialized")

// Kind — тег варианта; физика фильтрует по нему.
type Kind int

const (
	KindPlayer Kind = iota
	KindProjectile
	KindEnemy
	KindObstacle
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindProjectile:
		return "projectile"
	case KindEnemy:
		return "enemy"
	case KindObstacle:
		return "obstacle"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// State — стадия жизненного цикла.
type State int

const (
	Uninitialized State = iota
	Ready
	Removed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Removed:
		return "removed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// GameObject — то, что сцена умеет хранить и обновлять.
type GameObject interface {
	ID() types.EntityID
	Kind() Kind
	State() State
	// Initialize строит визуальное представление и один раз применяет к нему трансформ.
	Initialize(ctx context.Context, f render.Factory) error
	// Update ничего не делает, пока объект не Ready.
	Update(dt float64)
	Transform() *component.Transform
	// Visual равен nil до успешного Initialize.
	Visual() render.Visual
	// MarkRemoved вызывается сценой при удалении; дальше Update не работает.
	MarkRemoved()
}

// Base — общая часть всех вариантов.
type Base struct {
	id        types.EntityID
	kind      Kind
	state     State
	spec      render.VisualSpec
	transform component.Transform
	visual    render.Visual
}

func newBase(kind Kind, spec render.VisualSpec) Base {
	return Base{
		id:        types.NewEntityID(),
		kind:      kind,
		spec:      spec,
		transform: component.NewTransform(),
	}
}

func (b *Base) ID() types.EntityID              { return b.id }
func (b *Base) Kind() Kind                      { return b.kind }
func (b *Base) State() State                    { return b.state }
func (b *Base) Transform() *component.Transform { return &b.transform }
func (b *Base) Visual() render.Visual           { return b.visual }
func (b *Base) MarkRemoved()                    { b.state = Removed }

// Ready — можно ли обновлять объект.
func (b *Base) Ready() bool { return b.state == Ready }

// Spec — что будет построено при Initialize.
func (b *Base) Spec() render.VisualSpec { return b.spec }

func (b *Base) Initialize(ctx context.Context, f render.Factory) error {
	if b.state != Uninitialized {
		return fmt.Errorf("%s %s: %w", b.kind, b.id.Short(), ErrAlreadyInitialized)
	}
	v, err := f.CreateVisual(ctx, b.spec)
	if err != nil {
		return fmt.Errorf("create visual for %s %s: %w", b.kind, b.id.Short(), err)
	}
	if v == nil {
		return fmt.Errorf("create visual for %s %s: factory returned nil", b.kind, b.id.Short())
	}
	b.visual = v
	b.transform.Apply(v)
	b.state = Ready
	return nil
}

func (b *Base) Update(dt float64) {
	if !b.Ready() {
		return
	}
	b.transform.Apply(b.visual)
}
