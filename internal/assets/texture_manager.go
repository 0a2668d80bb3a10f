package assets

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound — файла ассета нет в каталоге.
var ErrNotFound = errors.New("asset not found")

// LoadFunc читает ассет с диска в ресурс движка.
type LoadFunc[T any] func(path string) (T, error)

// UnloadFunc освобождает ресурс движка.
type UnloadFunc[T any] func(T)

// TextureManager управляет загрузкой, кэшированием и выгрузкой текстур.
// T — тип текстуры конкретного движка (rl.Texture2D, *ebiten.Image).
type TextureManager[T any] struct {
	mu       sync.Mutex
	dir      string
	load     LoadFunc[T]
	unload   UnloadFunc[T]
	textures map[string]T
}

// NewTextureManager создает новый экземпляр TextureManager. unload может быть nil.
func NewTextureManager[T any](dir string, load LoadFunc[T], unload UnloadFunc[T]) *TextureManager[T] {
	return &TextureManager[T]{
		dir:      dir,
		load:     load,
		unload:   unload,
		textures: make(map[string]T),
	}
}

// Get возвращает текстуру по имени файла, загружая её при первом обращении.
func (m *TextureManager[T]) Get(name string) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tex, ok := m.textures[name]; ok {
		return tex, nil
	}
	tex, err := m.loadSingle(name)
	if err != nil {
		var zero T
		return zero, err
	}
	m.textures[name] = tex
	log.Printf("Successfully loaded texture %s", name)
	return tex, nil
}

// loadSingle безопасно загружает одну текстуру: паника движка
// превращается в ошибку.
func (m *TextureManager[T]) loadSingle(name string) (tex T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("load texture %s: loader panicked: %v", name, r)
		}
	}()

	path := filepath.Join(m.dir, name)
	if _, statErr := os.Stat(path); statErr != nil {
		if errors.Is(statErr, os.ErrNotExist) {
			return tex, fmt.Errorf("load texture %s: %w", path, ErrNotFound)
		}
		return tex, fmt.Errorf("load texture %s: %w", path, statErr)
	}
	tex, err = m.load(path)
	if err != nil {
		return tex, fmt.Errorf("load texture %s: %w", path, err)
	}
	return tex, nil
}

// Loaded — есть ли текстура в кэше.
func (m *TextureManager[T]) Loaded(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.textures[name]
	return ok
}

func (m *TextureManager[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.textures)
}

// Cleanup выгружает все загруженные текстуры.
func (m *TextureManager[T]) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, tex := range m.textures {
		if m.unload != nil {
			m.unload(tex)
		}
		delete(m.textures, name)
	}
	log.Println("All textures unloaded.")
}
