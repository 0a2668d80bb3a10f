package ebitenrender

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"syringe-defense/internal/input"
)

var ErrAlreadyBound = errors.New("input device already bound")

var keyBindings = map[input.Key][]ebiten.Key{
	input.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	input.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	input.KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	input.KeyDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	input.KeyShoot: {ebiten.KeySpace},
}

// Input опрашивает клавиатуру, мышь и первое касание ebiten.
type Input struct {
	renderer *Renderer
	sink     input.Sink
	keys     [len(input.Keys)]bool
	down     bool
	touches  []ebiten.TouchID
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

// Poll вызывается из ebiten Update до кадра игры.
func (in *Input) Poll() {
	if in.sink == nil {
		return
	}
	for _, k := range input.Keys {
		down := false
		for _, code := range keyBindings[k] {
			if ebiten.IsKeyPressed(code) {
				down = true
				break
			}
		}
		if down != in.keys[k] {
			in.keys[k] = down
			in.sink.SetKey(k, down)
		}
	}

	x, y := ebiten.CursorPosition()
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.touches = ebiten.AppendTouchIDs(in.touches[:0])
	if len(in.touches) > 0 {
		x, y = ebiten.TouchPosition(in.touches[0])
		down = true
	}
	nx, ny := in.renderer.Camera().ScreenToNormalized(float64(x), float64(y))
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
