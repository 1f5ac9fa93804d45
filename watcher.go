package shader

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// ErrNoSourceFiles is returned by Watch for programs built from in-memory
// sources.
var ErrNoSourceFiles = errors.New("program has no source files")

// Watcher reloads a program when its source files change on disk.
//
// File events are collected on a background goroutine. The reload itself
// only happens inside Reload or Force, which must be called on the
// goroutine that owns the rendering context.
type Watcher struct {
	loader  *Loader
	program *Program
	fsw     *fsnotify.Watcher
	files   map[string]struct{}

	pending atomic.Bool
	wg      sync.WaitGroup
}

// Watch starts watching the source files of p. Paths are resolved against
// the OS file system.
func (l *Loader) Watch(p *Program) (*Watcher, error) {
	vertexPath, fragmentPath := p.Paths()
	if vertexPath == "" || fragmentPath == "" {
		return nil, ErrNoSourceFiles
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	w := &Watcher{
		loader:  l,
		program: p,
		fsw:     fsw,
		files:   make(map[string]struct{}, 2),
	}

	// Editors often replace files instead of writing them in place, so
	// watch the parent directories and filter by name.
	dirs := make(map[string]struct{}, 2)
	for _, path := range []string{vertexPath, fragmentPath} {
		abs, err := filepath.Abs(path)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("resolve %q: %w", path, err)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %q: %w", dir, err)
		}
	}

	w.wg.Add(1)
	go w.watch()

	return w, nil
}

func (w *Watcher) watch() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if _, tracked := w.files[filepath.Clean(event.Name)]; tracked {
				w.pending.Store(true)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.loader.logger.Warn("shader watcher", "err", err)
		}
	}
}

// Pending reports whether a source file changed since the last reload.
func (w *Watcher) Pending() bool {
	return w.pending.Load()
}

// Reload reloads the program if a source file changed. It reports whether
// a reload was attempted. If loading fails the previous program stays
// active and the *Error is returned.
func (w *Watcher) Reload() (bool, error) {
	if !w.pending.Swap(false) {
		return false, nil
	}
	return true, w.Force()
}

// Force reloads the program unconditionally.
func (w *Watcher) Force() error {
	vertexPath, fragmentPath := w.program.Paths()
	next, err := w.loader.Load(vertexPath, fragmentPath)
	if err != nil {
		return err
	}

	w.program.Replace(next)

	w.loader.logger.Info("shader program reloaded",
		"program", w.program.id, "vertex", vertexPath, "fragment", fragmentPath)
	return nil
}

// Close stops watching. The program itself is left untouched.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}
