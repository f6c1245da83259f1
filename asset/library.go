// Package asset loads images from disk and converts them to terminal cells.
// Every load may fail; callers draw geometric fallbacks instead.
package asset

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidName is returned for names that escape the asset directory
var ErrInvalidName = errors.New("invalid asset name")

// LoadError reports which asset failed and why
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("asset %s: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Sprite and background names looked up by the renderers
const (
	PlayerIdle = "player_idle.png"
	Monster    = "monster.png"
)

// PlayerWalk returns the walk-cycle frame name, 0-based
func PlayerWalk(frame int) string {
	return fmt.Sprintf("player_walk_%d.png", frame+1)
}

// Library caches decoded images and load failures by name.
// A failed name is not retried.
type Library struct {
	dir string

	mu       sync.Mutex
	images   map[string]*Image
	failures map[string]error
}

// NewLibrary creates a library rooted at dir. An empty dir makes every load fail.
func NewLibrary(dir string) *Library {
	return &Library{
		dir:      dir,
		images:   make(map[string]*Image),
		failures: make(map[string]error),
	}
}

// Load returns the named image, decoding it on first use
func (l *Library) Load(name string) (*Image, error) {
	l.mu.Lock()
	if img, ok := l.images[name]; ok {
		l.mu.Unlock()
		return img, nil
	}
	if err, ok := l.failures[name]; ok {
		l.mu.Unlock()
		return nil, err
	}
	l.mu.Unlock()

	img, err := l.read(name)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.failures[name] = err
		log.Printf("asset: %v, using fallback", err)
		return nil, err
	}
	l.images[name] = img
	return img, nil
}

// Preload decodes names concurrently and returns how many succeeded.
// Failures are recorded, not returned.
func (l *Library) Preload(names ...string) int {
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	var mu sync.Mutex
	loaded := 0
	for _, name := range names {
		g.Go(func() error {
			if _, err := l.Load(name); err == nil {
				mu.Lock()
				loaded++
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return loaded
}

func (l *Library) read(name string) (*Image, error) {
	if l.dir == "" {
		return nil, &LoadError{Name: name, Err: os.ErrNotExist}
	}
	if !filepath.IsLocal(name) {
		return nil, &LoadError{Name: name, Err: ErrInvalidName}
	}

	f, err := os.Open(filepath.Join(l.dir, name))
	if err != nil {
		return nil, &LoadError{Name: name, Err: err}
	}
	defer f.Close()

	img, err := Decode(name, f)
	if err != nil {
		return nil, &LoadError{Name: name, Err: err}
	}
	return img, nil
}
