package render

// FrameQueue — Scheduler для хостов с собственным циклом (raylib, ebiten):
// колбэк ставится в очередь и выполняется на следующем Tick.
type FrameQueue struct {
	pending []func()
}

func (q *FrameQueue) RequestFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

// Tick выполняет колбэки, запрошенные до этого вызова. Запросы,
// сделанные во время Tick, ждут следующего кадра.
func (q *FrameQueue) Tick() int {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Pending — сколько колбэков ждёт кадра.
func (q *FrameQueue) Pending() int { return len(q.pending) }
