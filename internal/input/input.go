// Package input — контракт между устройствами ввода хоста и InputSystem.
// Устройства только переключают состояние клавиш и указателя.
package input

// Key — логическая клавиша, на которую реагирует ядро.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyShoot
	keyCount
)

// Keys — все логические клавиши, удобно для опроса устройств.
var Keys = [...]Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeyShoot}

// Valid — известная ли клавиша.
func (k Key) Valid() bool { return k >= 0 && k < keyCount }

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyShoot:
		return "shoot"
	}
	return "unknown"
}

// Sink принимает сырые переходы от устройства. Координаты указателя
// нормализованы к элементу хоста: (0,0) левый верхний угол, (1,1) правый нижний.
type Sink interface {
	SetKey(k Key, down bool)
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp()
}

// Device — источник ввода хоста (окно, терминал, тестовый скрипт).
type Device interface {
	// Bind подключает слушателей; ошибка фатальна для запуска.
	Bind(sink Sink) error
	// Unbind отключает всех слушателей, повторный вызов безопасен.
	Unbind()
}
