package entity

import (
	"context"
	"errors"
	"math"
	"testing"

	"syringe-defense/internal/component"
	"syringe-defense/internal/config"
	"syringe-defense/internal/event"
	"syringe-defense/internal/render/rendertest"
)

type fixedRand float64

func (f fixedRand) Range(lo, hi float64) float64 { return float64(f) }

func initialize(t *testing.T, obj GameObject) *rendertest.Visual {
	t.Helper()
	r := rendertest.New()
	if err := obj.Initialize(context.Background(), r); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return obj.Visual().(*rendertest.Visual)
}

func collect(bus *event.Dispatcher, et event.EventType) *[]event.Event {
	var got []event.Event
	bus.Subscribe(et, event.HandlerFunc(func(e event.Event) { got = append(got, e) }))
	return &got
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestInitializeAppliesTransformOnce(t *testing.T) {
	o := NewObstacle(component.V(1, 2))
	if o.State() != Uninitialized || o.Visual() != nil {
		t.Fatalf("Expected fresh obstacle to be uninitialized without visual")
	}
	v := initialize(t, o)

	if o.State() != Ready {
		t.Errorf("Expected Ready, got %v", o.State())
	}
	if v.Applied != 1 || v.X != 1 || v.Y != 2 {
		t.Errorf("Expected initial transform applied once, got %+v", v)
	}
	if w, h := v.Size(); w != config.ObstacleSize || h != config.ObstacleSize {
		t.Errorf("Expected %vx%v geometry, got %vx%v", config.ObstacleSize, config.ObstacleSize, w, h)
	}
}

func TestInitializeTwiceFails(t *testing.T) {
	o := NewObstacle(component.V(0, 0))
	initialize(t, o)
	err := o.Initialize(context.Background(), rendertest.New())
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("Expected ErrAlreadyInitialized, got %v", err)
	}
}

func TestInitializeFailureKeepsUninitialized(t *testing.T) {
	r := rendertest.New()
	r.FailAssets[config.BulletAsset] = true
	b := NewBullet(event.NewDispatcher(), component.V(0, 0), 1)

	err := b.Initialize(context.Background(), r)
	if !errors.Is(err, rendertest.ErrAssetMissing) {
		t.Fatalf("Expected asset error, got %v", err)
	}
	if b.State() != Uninitialized || b.Visual() != nil {
		t.Errorf("Expected entity to stay uninitialized")
	}
}

func TestUpdateIsNoopUntilReady(t *testing.T) {
	bus := event.NewDispatcher()
	b := NewBullet(bus, component.V(0, 0), 0)
	b.Update(1)
	if b.Transform().Position.Y != 0 {
		t.Errorf("Expected no motion before Initialize, got y=%v", b.Transform().Position.Y)
	}
}

func TestUpdateIsNoopAfterRemoval(t *testing.T) {
	bus := event.NewDispatcher()
	b := NewBullet(bus, component.V(0, 0), 0)
	initialize(t, b)
	b.MarkRemoved()
	b.Update(1)
	if b.Transform().Position.Y != 0 {
		t.Errorf("Expected removed bullet to stay put, got y=%v", b.Transform().Position.Y)
	}
}

func TestBulletMovesUpAndReportsOnce(t *testing.T) {
	bus := event.NewDispatcher()
	out := collect(bus, event.BulletOutOfBounds)
	b := NewBullet(bus, component.V(0, 12), 1)
	initialize(t, b)

	if b.Speed() != 10 {
		t.Fatalf("Expected speed 10, got %v", b.Speed())
	}
	b.Update(0.1)
	if !near(b.Transform().Position.Y, 13) {
		t.Errorf("Expected y=13, got %v", b.Transform().Position.Y)
	}
	if len(*out) != 0 {
		t.Fatalf("Expected no event inside bounds")
	}

	b.Update(0.2)
	b.Update(0.2)
	if len(*out) != 1 {
		t.Fatalf("Expected exactly one out-of-bounds event, got %d", len(*out))
	}
	if (*out)[0].Data != b {
		t.Errorf("Expected payload to be the bullet itself")
	}
}

func TestBulletVisualLagsOneFrame(t *testing.T) {
	bus := event.NewDispatcher()
	b := NewBullet(bus, component.V(0, 0), 0)
	v := initialize(t, b)
	b.Update(1)
	if v.Y != 0 {
		t.Errorf("Expected visual to hold pre-move position, got %v", v.Y)
	}
	b.Update(1)
	if v.Y != config.BulletBaseSpeed {
		t.Errorf("Expected visual y=%v, got %v", config.BulletBaseSpeed, v.Y)
	}
}

func TestNurseSpawn(t *testing.T) {
	n := NewRobotNurse(event.NewDispatcher(), fixedRand(1.5))
	tr := n.Transform()
	if tr.Position != component.V(1.5, config.NurseSpawnY) {
		t.Errorf("Unexpected spawn position %v", tr.Position)
	}
	if tr.Depth != config.NurseFarDepth {
		t.Errorf("Expected far depth, got %v", tr.Depth)
	}
	if tr.Scale.X != config.NurseStartScale {
		t.Errorf("Expected start scale, got %v", tr.Scale.X)
	}
}

func TestNurseDescendsGrowsAndComesForward(t *testing.T) {
	bus := event.NewDispatcher()
	n := NewRobotNurse(bus, fixedRand(0))
	initialize(t, n)
	n.Transform().Position.Y = -3

	n.Update(1)

	tr := n.Transform()
	if !near(tr.Position.Y, -4) {
		t.Errorf("Expected y=-4, got %v", tr.Position.Y)
	}
	// Масштаб считается от позиции до шага: -3 это середина пути 4..-10.
	if !near(tr.Scale.X, 7) || !near(tr.Scale.Y, 7) {
		t.Errorf("Expected scale 7, got %v", tr.Scale)
	}
	wantDepth := -1 + (config.NurseSpawnY+4)/(config.NurseSpawnY-config.NurseBottomY)
	if !near(tr.Depth, wantDepth) {
		t.Errorf("Expected depth %v, got %v", wantDepth, tr.Depth)
	}
}

func TestNurseReachesBottomOnce(t *testing.T) {
	bus := event.NewDispatcher()
	got := collect(bus, event.NurseReachedBottom)
	n := NewRobotNurse(bus, fixedRand(0))
	initialize(t, n)
	n.Transform().Position.Y = config.NurseBottomY + 0.5

	n.Update(0.25)
	if len(*got) != 0 {
		t.Fatalf("Expected no event above the bottom line")
	}
	n.Update(0.5)
	n.Update(0.5)
	if len(*got) != 1 || (*got)[0].Data != n {
		t.Fatalf("Expected exactly one bottom event with the nurse, got %d", len(*got))
	}
}

func TestSyringeStartsAtBase(t *testing.T) {
	s := NewSyringe(event.NewDispatcher())
	if s.Kind() != KindPlayer || s.Position() != component.V(0, config.SyringeBaseY) {
		t.Errorf("Unexpected syringe %v at %v", s.Kind(), s.Position())
	}
}

func TestSyringeMoveClamped(t *testing.T) {
	bus := event.NewDispatcher()
	s := NewSyringe(bus)

	bus.Publish(event.Move, event.MovePayload{X: 1})
	if s.Position().X != 0 {
		t.Errorf("Expected MOVE to be ignored before Initialize")
	}

	initialize(t, s)
	bus.Publish(event.Move, event.MovePayload{X: 1, Y: 1})
	if !near(s.Position().X, config.SyringeMoveStep) || s.Position().Y != config.SyringeBaseY {
		t.Errorf("Expected x=%v on base line, got %v", config.SyringeMoveStep, s.Position())
	}
	for i := 0; i < 200; i++ {
		bus.Publish(event.Move, event.MovePayload{X: -1})
	}
	if s.Position().X != config.SyringeMinX {
		t.Errorf("Expected clamp to %v, got %v", config.SyringeMinX, s.Position().X)
	}
}

func TestSyringeDragAndFire(t *testing.T) {
	bus := event.NewDispatcher()
	fired := collect(bus, event.BulletFired)
	s := NewSyringe(bus)
	initialize(t, s)

	// Нижний край экрана: y = -14, оттяжка 1.
	bus.Publish(event.DragStart, event.DragPayload{X: 0.75, Y: 1})
	if !s.Dragging() || !near(s.PullBack(), 1) {
		t.Fatalf("Expected dragging with pull-back 1, got %v %v", s.Dragging(), s.PullBack())
	}
	if !near(s.Position().X, 3) {
		t.Errorf("Expected x=3, got %v", s.Position().X)
	}

	// Во время перетаскивания MOVE не двигает шприц.
	bus.Publish(event.Move, event.MovePayload{X: 1})
	if !near(s.Position().X, 3) {
		t.Errorf("Expected MOVE ignored while dragging, got %v", s.Position().X)
	}

	s.Update(0.016)
	if !near(s.Position().Y, config.SyringeBaseY+config.SyringeLiftPerPull) {
		t.Errorf("Expected lifted syringe, got y=%v", s.Position().Y)
	}

	bus.Publish(event.DragEnd, nil)
	if len(*fired) != 1 {
		t.Fatalf("Expected one bullet, got %d", len(*fired))
	}
	b, ok := (*fired)[0].Data.(*Bullet)
	if !ok {
		t.Fatalf("Expected *Bullet payload, got %T", (*fired)[0].Data)
	}
	if !near(b.PullBack(), 1) || !near(b.Speed(), 10) || !near(b.Transform().Position.X, 3) {
		t.Errorf("Unexpected bullet pull=%v speed=%v pos=%v", b.PullBack(), b.Speed(), b.Transform().Position)
	}
	if s.Dragging() || s.PullBack() != 0 {
		t.Errorf("Expected drag state reset after release")
	}
}

func TestSyringeNoPullNoFire(t *testing.T) {
	bus := event.NewDispatcher()
	fired := collect(bus, event.BulletFired)
	s := NewSyringe(bus)
	initialize(t, s)

	bus.Publish(event.DragStart, event.DragPayload{X: 0.5, Y: 0.5})
	bus.Publish(event.DragEnd, nil)
	if len(*fired) != 0 {
		t.Errorf("Expected no bullet without pull-back")
	}
}

func TestSyringePullBackCapped(t *testing.T) {
	bus := event.NewDispatcher()
	s := NewSyringe(bus)
	initialize(t, s)
	bus.Publish(event.DragStart, event.DragPayload{X: 0.5, Y: 5})
	if s.PullBack() != config.MaxPullBack {
		t.Errorf("Expected pull-back capped at %v, got %v", config.MaxPullBack, s.PullBack())
	}
}

func TestSyringeCooldown(t *testing.T) {
	bus := event.NewDispatcher()
	fired := collect(bus, event.BulletFired)
	s := NewSyringe(bus)
	initialize(t, s)

	shot := func() {
		bus.Publish(event.DragStart, event.DragPayload{X: 0.5, Y: 1})
		bus.Publish(event.DragEnd, nil)
	}
	shot()
	shot()
	if len(*fired) != 1 {
		t.Fatalf("Expected cooldown to block second shot, got %d", len(*fired))
	}
	s.Update(config.FireCooldown)
	if s.Cooldown() != 0 {
		t.Fatalf("Expected cooldown to expire, got %v", s.Cooldown())
	}
	shot()
	if len(*fired) != 2 {
		t.Errorf("Expected second shot after cooldown, got %d", len(*fired))
	}
}

func TestSyringeResetGestureDropsDrag(t *testing.T) {
	bus := event.NewDispatcher()
	fired := collect(bus, event.BulletFired)
	s := NewSyringe(bus)
	initialize(t, s)

	bus.Publish(event.DragStart, event.DragPayload{X: 0.75, Y: 1})
	s.Update(0.016)
	s.ResetGesture()

	if s.Dragging() || s.PullBack() != 0 || s.Cooldown() != 0 {
		t.Errorf("Expected idle syringe, got dragging=%v pullBack=%v cooldown=%v", s.Dragging(), s.PullBack(), s.Cooldown())
	}
	if s.Position().Y != config.SyringeBaseY || s.Position().X != 3 {
		t.Errorf("Expected (3, %v), got %v", config.SyringeBaseY, s.Position())
	}
	bus.Publish(event.DragEnd, nil)
	if len(*fired) != 0 {
		t.Errorf("Expected no shot from a dropped drag, got %d", len(*fired))
	}
}

func TestKindAndStateStrings(t *testing.T) {
	if KindEnemy.String() != "enemy" || Ready.String() != "ready" || Kind(42).String() != "kind(42)" {
		t.Error("Unexpected String output")
	}
}
