// internal/app/game.go
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"syringe-defense/internal/component"
	"syringe-defense/internal/config"
	"syringe-defense/internal/entity"
	"syringe-defense/internal/event"
	"syringe-defense/internal/input"
	"syringe-defense/internal/render"
	"syringe-defense/internal/scene"
	"syringe-defense/internal/system"
	"syringe-defense/internal/utils"
)

// Options — внешние зависимости игры.
type Options struct {
	Renderer  render.Renderer
	Scheduler render.Scheduler
	// Now по умолчанию time.Now; тесты подставляют свои часы.
	Now func() time.Time
	// Seed для появления медсестёр, 0 — от текущего времени.
	Seed int64
}

// Game holds the main game state and logic.
type Game struct {
	EventDispatcher *event.Dispatcher
	Scene           *scene.Scene
	InputSystem     *system.InputSystem
	PhysicsSystem   *system.PhysicsSystem
	Player          *entity.Syringe
	Rng             *utils.PRNGService

	renderer  render.Renderer
	scheduler render.Scheduler
	now       func() time.Time

	// Game state
	score         int
	gameOver      bool
	spawnTimer    float64
	spawnInterval float64
	isRunning     bool
	framePending  bool
	lastTime      time.Time
}

// NewGame initializes a new game instance.
func NewGame(opts Options) *Game {
	if opts.Renderer == nil || opts.Scheduler == nil {
		panic("renderer and scheduler cannot be nil")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	eventDispatcher := event.NewDispatcher()
	sc := scene.New(opts.Renderer)
	g := &Game{
		EventDispatcher: eventDispatcher,
		Scene:           sc,
		InputSystem:     system.NewInputSystem(eventDispatcher),
		Player:          entity.NewSyringe(eventDispatcher),
		Rng:             utils.NewPRNGService(opts.Seed),
		renderer:        opts.Renderer,
		scheduler:       opts.Scheduler,
		now:             opts.Now,
		spawnInterval:   config.SpawnInterval,
	}
	g.PhysicsSystem = system.NewPhysicsSystem(eventDispatcher, sc, g)
	return g
}

// AttachInput подключает устройство ввода хоста.
func (g *Game) AttachInput(d input.Device) error {
	return g.InputSystem.Attach(d)
}

// Start готовит сцену и игрока и запускает цикл. Если игра уже идёт,
// ничего не делает.
func (g *Game) Start(ctx context.Context) error {
	if g.isRunning {
		return nil
	}
	log.Println("Initializing scene...")
	if err := g.Scene.Initialize(ctx); err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	if !g.Scene.Contains(g.Player) {
		log.Println("Scene initialized, adding player...")
		if err := g.Scene.AddGameObject(ctx, g.Player); err != nil {
			return fmt.Errorf("start game: add player: %w", err)
		}
	}
	log.Println("Player added, starting game loop...")
	g.isRunning = true
	g.lastTime = g.now()
	g.requestFrame()
	return nil
}

// Stop останавливает цикл; действует со следующей итерации.
func (g *Game) Stop() {
	g.isRunning = false
}

// Reset обнуляет счёт, снимает game over, убирает всё кроме игрока
// и снова вызывает Start.
func (g *Game) Reset(ctx context.Context) error {
	g.score = 0
	g.gameOver = false
	g.spawnTimer = 0
	g.InputSystem.Reset()
	g.Player.ResetGesture()
	for _, obj := range g.Scene.Objects() {
		if obj != entity.GameObject(g.Player) {
			g.Scene.RemoveGameObject(obj)
		}
	}
	return g.Start(ctx)
}

// Resize пересчитывает камеру под новый размер окна.
func (g *Game) Resize(width, height int) {
	g.Scene.Resize(width, height)
}

// Cleanup останавливает игру и освобождает всё, что она держит.
// После Cleanup экземпляр не используется.
func (g *Game) Cleanup() {
	g.Stop()
	g.InputSystem.Cleanup()
	g.PhysicsSystem.Cleanup()
	g.renderer.Release()
	g.EventDispatcher.Clear()
}

// requestFrame ставит в очередь не больше одной итерации цикла.
func (g *Game) requestFrame() {
	if g.framePending {
		return
	}
	g.framePending = true
	g.scheduler.RequestFrame(g.frame)
}

func (g *Game) frame() {
	g.framePending = false
	if !g.isRunning {
		return
	}
	now := g.now()
	deltaTime := now.Sub(g.lastTime).Seconds()
	g.lastTime = now

	g.Update(deltaTime)
	g.renderer.Render()
	g.requestFrame()
}

// Update progresses the game state by one frame.
func (g *Game) Update(deltaTime float64) {
	if g.gameOver {
		return
	}
	g.InputSystem.Update()
	g.PhysicsSystem.Update(deltaTime)
	g.Scene.Update(deltaTime)

	g.spawnTimer += deltaTime
	if g.spawnTimer >= g.spawnInterval {
		g.spawnEnemy()
		g.spawnTimer = 0
	}
}

func (g *Game) spawnEnemy() {
	nurse := entity.NewRobotNurse(g.EventDispatcher, g.Rng)
	// Ошибку сцена уже залогировала, медсестра просто не появится.
	_ = g.Scene.AddGameObject(context.Background(), nurse)
}

// AddObstacle ставит неподвижное препятствие.
func (g *Game) AddObstacle(ctx context.Context, pos component.Vec2) error {
	return g.Scene.AddGameObject(ctx, entity.NewObstacle(pos))
}

// --- Public Accessors & Mutators ---

func (g *Game) Score() int     { return g.score }
func (g *Game) GameOver() bool { return g.gameOver }
func (g *Game) Running() bool  { return g.isRunning }

// SpawnTimer — накопленное время до следующей медсестры.
func (g *Game) SpawnTimer() float64 { return g.spawnTimer }

// AddScore реализует system.ScoreKeeper.
func (g *Game) AddScore(points int) {
	if points > 0 {
		g.score += points
	}
}

// SetGameOver реализует system.ScoreKeeper. Обратно флаг сбрасывает только Reset.
func (g *Game) SetGameOver() {
	g.gameOver = true
}

var _ system.ScoreKeeper = (*Game)(nil)
