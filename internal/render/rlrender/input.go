package rlrender

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"syringe-defense/internal/input"
)

// ErrAlreadyBound — устройство уже передаёт ввод другому получателю.
var ErrAlreadyBound = errors.New("input device already bound")

// keyBindings — клавиши raylib для каждой логической клавиши.
var keyBindings = map[input.Key][]int32{
	input.KeyLeft:  {rl.KeyLeft, rl.KeyA},
	input.KeyRight: {rl.KeyRight, rl.KeyD},
	input.KeyUp:    {rl.KeyUp, rl.KeyW},
	input.KeyDown:  {rl.KeyDown, rl.KeyS},
	input.KeyShoot: {rl.KeySpace},
}

// Input опрашивает клавиатуру и мышь raylib раз в кадр.
type Input struct {
	renderer *Renderer
	sink     input.Sink
	keys     [len(input.Keys)]bool
	down     bool
}

func NewInput(r *Renderer) *Input {
	return &Input{renderer: r}
}

func (in *Input) Bind(sink input.Sink) error {
	if in.sink != nil {
		return ErrAlreadyBound
	}
	in.sink = sink
	return nil
}

func (in *Input) Unbind() {
	in.sink = nil
	in.keys = [len(input.Keys)]bool{}
	in.down = false
}

// Poll передаёт получателю только изменения состояния.
func (in *Input) Poll() {
	if in.sink == nil {
		return
	}
	for _, k := range input.Keys {
		down := false
		for _, code := range keyBindings[k] {
			if rl.IsKeyDown(code) {
				down = true
				break
			}
		}
		if down != in.keys[k] {
			in.keys[k] = down
			in.sink.SetKey(k, down)
		}
	}

	pos := rl.GetMousePosition()
	nx, ny := in.renderer.Camera().ScreenToNormalized(float64(pos.X), float64(pos.Y))
	down := rl.IsMouseButtonDown(rl.MouseButtonLeft)
	switch {
	case down && !in.down:
		in.sink.PointerDown(nx, ny)
	case down:
		in.sink.PointerMove(nx, ny)
	case in.down:
		in.sink.PointerUp()
	}
	in.down = down
}

var _ input.Device = (*Input)(nil)
