// internal/config/config.go
package config

import (
	"fmt"
	"image/color"

	"github.com/caarlos0/env/v11"
)

// Геометрия мира. Камера привязана к высоте: по вертикали всегда видно
// 2*ViewHalfHeight единиц, ширина зависит от пропорций окна.
const (
	ReferenceWidth  = 1320.0
	ReferenceHeight = 2868.0
	ViewHalfHeight  = ReferenceHeight / 200
	PixelsPerUnit   = 100.0

	BackgroundAsset = "background.jpg"
	BackgroundDepth = -10.0
)

// Игрок (шприц)
const (
	SyringeAsset       = "syringe.png"
	SyringeSize        = 1.0
	SyringeBaseY       = -13.0
	SyringeMinX        = -6.0
	SyringeMaxX        = 6.0
	SyringeMoveStep    = 0.1 // за одно событие MOVE
	SyringeLiftPerPull = 0.1 // визуальный отклик на оттяжку
	MaxPullBack        = 2.0
	FireThreshold      = 0.0  // выстрел только при оттяжке строго больше
	FireCooldown       = 0.25 // секунды между выстрелами

	// Перевод нормализованных координат указателя в мир.
	DragWorldWidth  = 12.0
	DragWorldHeight = 28.0
)

// Пуля
const (
	BulletAsset        = "bullet.png"
	BulletSize         = 0.5
	BulletBaseSpeed    = 5.0
	BulletSpeedPerPull = 5.0
	BulletMaxY         = 14.0
)

// Медсестра-робот
const (
	NurseAsset      = "nurse.png"
	NurseSize       = 1.0
	NurseSpeed      = 1.0
	NurseSpawnY     = 5.7
	NurseSpawnMinX  = -2.0
	NurseSpawnMaxX  = 2.0
	NurseScaleFromY = 4.0
	NurseBottomY    = -10.0
	NurseStartScale = 4.0
	NurseEndScale   = 10.0
	NurseFarDepth   = -1.0
	NurseNearDepth  = 0.0
)

// Препятствие
const (
	ObstacleAsset = "obstacle.png"
	ObstacleSize  = 2.0
)

// Правила
const (
	SpawnInterval = 2.0 // секунды
	ScorePerHit   = 10
)

// Окно и интерфейс
const (
	ScreenWidth  = 440
	ScreenHeight = 956
	MaxDeltaTime = 0.25 // хост обрезает dt после сворачивания окна

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
	RunningColor    = color.RGBA{70, 130, 180, 220}
	GameOverColor   = color.RGBA{220, 60, 60, 220}
	ButtonColor     = color.RGBA{200, 200, 200, 255}
	ButtonHover     = color.RGBA{130, 130, 130, 255}

	// Цвета-заглушки, если текстуры нет на диске.
	FallbackColors = map[string]color.RGBA{
		SyringeAsset:    {80, 200, 255, 255},
		BulletAsset:     {255, 230, 80, 255},
		NurseAsset:      {240, 240, 240, 255},
		ObstacleAsset:   {128, 128, 128, 255},
		BackgroundAsset: {40, 60, 70, 255},
	}
)

// Settings — параметры запуска из окружения.
type Settings struct {
	WindowWidth  int    `env:"SYRINGE_WINDOW_WIDTH"  envDefault:"440"`
	WindowHeight int    `env:"SYRINGE_WINDOW_HEIGHT" envDefault:"956"`
	AssetDir     string `env:"SYRINGE_ASSET_DIR"     envDefault:"assets"`
	Sound        bool   `env:"SYRINGE_SOUND"         envDefault:"true"`
	Seed         int64  `env:"SYRINGE_SEED"          envDefault:"0"`
	PprofAddr    string `env:"SYRINGE_PPROF_ADDR"`
	// AllowFallback рисует цветные прямоугольники вместо отсутствующих текстур.
	AllowFallback bool `env:"SYRINGE_ALLOW_FALLBACK" envDefault:"true"`
}

// Load читает Settings из переменных окружения.
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		return Settings{}, fmt.Errorf("invalid window size %dx%d", s.WindowWidth, s.WindowHeight)
	}
	return s, nil
}
