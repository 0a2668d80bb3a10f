package scene

import (
	"context"
	"errors"
	"math"
	"testing"

	"syringe-defense/internal/component"
	"syringe-defense/internal/config"
	"syringe-defense/internal/entity"
	"syringe-defense/internal/event"
	"syringe-defense/internal/render/rendertest"
)

func newScene() (*Scene, *rendertest.Renderer) {
	r := rendertest.New()
	return New(r), r
}

func TestInitializeBackgroundOnce(t *testing.T) {
	s, r := newScene()
	ctx := context.Background()
	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("second Initialize: %v", err)
	}
	if len(r.Created) != 1 || len(r.Live) != 1 {
		t.Fatalf("Expected one background visual, created=%d live=%d", len(r.Created), len(r.Live))
	}
	bg := r.Created[0]
	if bg.Depth != config.BackgroundDepth || bg.Spec.Asset != config.BackgroundAsset {
		t.Errorf("Unexpected background %+v", bg)
	}
	if s.Len() != 0 {
		t.Errorf("Background must not count as a game object")
	}
}

func TestInitializeBackgroundFailure(t *testing.T) {
	s, r := newScene()
	r.FailAssets[config.BackgroundAsset] = true
	if err := s.Initialize(context.Background()); !errors.Is(err, rendertest.ErrAssetMissing) {
		t.Errorf("Expected asset error, got %v", err)
	}
	if s.Background() != nil {
		t.Errorf("Expected no background after failure")
	}
}

func TestAddRegistersVisualInOrder(t *testing.T) {
	s, r := newScene()
	ctx := context.Background()
	a := entity.NewObstacle(component.V(0, 0))
	b := entity.NewObstacle(component.V(1, 1))
	if err := s.AddGameObject(ctx, a); err != nil {
		t.Fatal(err)
	}
	if err := s.AddGameObject(ctx, b); err != nil {
		t.Fatal(err)
	}

	objs := s.Objects()
	if len(objs) != 2 || objs[0] != a || objs[1] != b {
		t.Fatalf("Expected insertion order [a b]")
	}
	if !r.Contains(a.Visual()) || !r.Contains(b.Visual()) {
		t.Errorf("Expected visuals registered with renderer")
	}
}

func TestAddDuplicateRejected(t *testing.T) {
	s, _ := newScene()
	ctx := context.Background()
	a := entity.NewObstacle(component.V(0, 0))
	if err := s.AddGameObject(ctx, a); err != nil {
		t.Fatal(err)
	}
	if err := s.AddGameObject(ctx, a); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate, got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Expected single entry, got %d", s.Len())
	}
}

func TestAddFailureDiscardsEntity(t *testing.T) {
	s, r := newScene()
	r.FailAssets[config.NurseAsset] = true
	n := entity.NewRobotNurse(event.NewDispatcher(), fixedRand(0))

	err := s.AddGameObject(context.Background(), n)
	if err == nil {
		t.Fatal("Expected error")
	}
	if s.Contains(n) || len(r.Live) != 0 {
		t.Errorf("Expected failed entity to be discarded")
	}
}

func TestRemove(t *testing.T) {
	s, r := newScene()
	a := entity.NewObstacle(component.V(0, 0))
	if err := s.AddGameObject(context.Background(), a); err != nil {
		t.Fatal(err)
	}

	if !s.RemoveGameObject(a) {
		t.Fatal("Expected remove to succeed")
	}
	if s.Contains(a) || r.Contains(a.Visual()) {
		t.Errorf("Expected entity and visual gone")
	}
	if a.State() != entity.Removed {
		t.Errorf("Expected Removed state, got %v", a.State())
	}
	if s.RemoveGameObject(a) {
		t.Errorf("Expected second remove to be a no-op")
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s, _ := newScene()
	if s.RemoveGameObject(entity.NewObstacle(component.V(0, 0))) {
		t.Error("Expected false for absent entity")
	}
}

type fixedRand float64

func (f fixedRand) Range(lo, hi float64) float64 { return float64(f) }

func TestUpdateToleratesSelfRemoval(t *testing.T) {
	s, _ := newScene()
	ctx := context.Background()
	bus := event.NewDispatcher()
	bus.Subscribe(event.BulletOutOfBounds, event.HandlerFunc(func(e event.Event) {
		s.RemoveGameObject(e.Data.(entity.GameObject))
	}))

	gone := entity.NewBullet(bus, component.V(0, config.BulletMaxY-0.01), 0)
	stays := entity.NewBullet(bus, component.V(0, 0), 0)
	if err := s.AddGameObject(ctx, gone); err != nil {
		t.Fatal(err)
	}
	if err := s.AddGameObject(ctx, stays); err != nil {
		t.Fatal(err)
	}

	s.Update(0.1)

	if s.Contains(gone) {
		t.Errorf("Expected bullet to remove itself")
	}
	if !s.Contains(stays) || math.Abs(stays.Transform().Position.Y-0.5) > 1e-9 {
		t.Errorf("Expected the other bullet to keep moving, y=%v", stays.Transform().Position.Y)
	}
}

func TestUpdateSkipsObjectsAddedMidPass(t *testing.T) {
	s, _ := newScene()
	ctx := context.Background()
	bus := event.NewDispatcher()
	var late *entity.Bullet
	bus.Subscribe(event.BulletOutOfBounds, event.HandlerFunc(func(event.Event) {
		late = entity.NewBullet(bus, component.V(0, 0), 0)
		if err := s.AddGameObject(ctx, late); err != nil {
			t.Fatal(err)
		}
	}))
	if err := s.AddGameObject(ctx, entity.NewBullet(bus, component.V(0, config.BulletMaxY), 0)); err != nil {
		t.Fatal(err)
	}

	s.Update(0.1)

	if late == nil || !s.Contains(late) {
		t.Fatal("Expected late bullet registered")
	}
	if late.Transform().Position.Y != 0 {
		t.Errorf("Expected late bullet not updated in the same pass")
	}
}

func TestResizeIsHeightAnchored(t *testing.T) {
	s, r := newScene()
	initial := s.Projection()
	wantHalfW := config.ViewHalfHeight * config.ReferenceWidth / config.ReferenceHeight
	if math.Abs(initial.Right-wantHalfW) > 1e-9 || initial.Top != config.ViewHalfHeight {
		t.Errorf("Unexpected initial projection %+v", initial)
	}

	s.Resize(800, 400)
	p := r.Projection
	if p.Top != config.ViewHalfHeight || p.Bottom != -config.ViewHalfHeight {
		t.Errorf("Expected fixed vertical extent, got %+v", p)
	}
	if math.Abs(p.Right-2*config.ViewHalfHeight) > 1e-9 || math.Abs(p.Left+2*config.ViewHalfHeight) > 1e-9 {
		t.Errorf("Expected width from aspect 2, got %+v", p)
	}

	s.Resize(0, 100)
	if r.Projection != p {
		t.Errorf("Expected zero size to be ignored")
	}
}
