package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"syringe-defense/internal/event"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Sound — звуковой эффект игры.
type Sound int

const (
	SoundShot Sound = iota
	SoundHit
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundShot:
		return "shot"
	case SoundHit:
		return "hit"
	case SoundGameOver:
		return "game over"
	}
	return "unknown"
}

// SoundManager синтезирует эффекты и проигрывает их через общий микшер.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	bus         *event.Dispatcher
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Bind подписывает менеджер на события выстрела, попадания и конца игры.
func (sm *SoundManager) Bind(bus *event.Dispatcher) {
	sm.Unbind()
	sm.bus = bus
	bus.Subscribe(event.BulletFired, sm)
	bus.Subscribe(event.NurseDestroyed, sm)
	bus.Subscribe(event.GameOver, sm)
}

func (sm *SoundManager) Unbind() {
	if sm.bus == nil {
		return
	}
	sm.bus.Unsubscribe(event.BulletFired, sm)
	sm.bus.Unsubscribe(event.NurseDestroyed, sm)
	sm.bus.Unsubscribe(event.GameOver, sm)
	sm.bus = nil
}

// OnEvent реализует интерфейс event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	if s, intensity, ok := soundFor(e); ok {
		sm.Play(s, intensity)
	}
}

type pullBacker interface {
	PullBack() float64
}

// soundFor сопоставляет событие эффекту. intensity в [0,1].
func soundFor(e event.Event) (Sound, float64, bool) {
	switch e.Type {
	case event.BulletFired:
		intensity := 0.5
		if b, ok := e.Data.(pullBacker); ok {
			intensity = math.Min(b.PullBack()/2, 1)
		}
		return SoundShot, intensity, true
	case event.NurseDestroyed:
		return SoundHit, 1, true
	case event.GameOver:
		return SoundGameOver, 1, true
	}
	return 0, 0, false
}

// Play добавляет эффект в микшер. Без Initialize ничего не делает.
func (sm *SoundManager) Play(s Sound, intensity float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	// speaker читает микшер из своей горутины
	speaker.Lock()
	sm.mixer.Add(streamerFor(s, intensity))
	speaker.Unlock()
}

func streamerFor(s Sound, intensity float64) beep.Streamer {
	switch s {
	case SoundShot:
		// Сильнее оттянул — выше и короче писк
		from := 600 + 600*intensity
		return beep.Take(sampleRate.N(time.Millisecond*120), NewSweepGenerator(sampleRate, from, from/2, 12))
	case SoundHit:
		return beep.Take(sampleRate.N(time.Millisecond*200), NewPopGenerator(sampleRate, 1))
	default:
		return beep.Take(sampleRate.N(time.Millisecond*900), NewSweepGenerator(sampleRate, 440, 110, 2))
	}
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.Unbind()

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SweepGenerator — синус со скольжением частоты и экспоненциальным затуханием.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	decay    float64
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep sound generator
func NewSweepGenerator(sr beep.SampleRate, from, to, decay float64) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, decay: decay}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// частота сползает от from к to примерно за 1/decay секунды
		k := math.Exp(-t * g.decay)
		freq := g.to + (g.from-g.to)*k
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := 0.25 * k * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// PopGenerator — короткий шумовой хлопок с низким гулом.
type PopGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewPopGenerator creates a pop sound generator
func NewPopGenerator(sr beep.SampleRate, seed int64) *PopGenerator {
	return &PopGenerator{sr: sr, seed: seed}
}

func (g *PopGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 20)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		thump := math.Sin(2 * math.Pi * 90 * t)

		sample := envelope * (0.2*noise + 0.3*thump)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PopGenerator) Err() error {
	return nil
}
