package strada

import (
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Renderer loads and renders the html/template set found in a directory.
// Render is safe for concurrent use; Reload swaps the parsed set atomically.
type Renderer struct {
	dir     string
	logger  *slog.Logger
	watcher *fsnotify.Watcher

	mu   sync.RWMutex
	tmpl *template.Template
}

// NewRenderer parses every *.html file directly under dir.
func NewRenderer(dir string, logger *slog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Renderer{dir: dir, logger: logger}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload reparses the template directory.
func (r *Renderer) Reload() error {
	tmpl, err := template.ParseGlob(filepath.Join(r.dir, "*.html"))
	if err != nil {
		return fmt.Errorf("parse templates in %s: %w", r.dir, err)
	}

	r.mu.Lock()
	r.tmpl = tmpl
	r.mu.Unlock()
	return nil
}

// Render executes the named template into w.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	r.mu.RLock()
	tmpl := r.tmpl
	r.mu.RUnlock()

	return tmpl.ExecuteTemplate(w, name, data)
}

// Watch reloads the template set whenever a file in the directory changes.
// Intended for debug mode; call Close to stop watching.
func (r *Renderer) Watch() error {
	if r.watcher != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start template watcher: %w", err)
	}
	if err := watcher.Add(r.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", r.dir, err)
	}
	r.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Remove) {
					continue
				}
				if err := r.Reload(); err != nil {
					r.logger.Warn("template reload failed", slog.String("error", err.Error()))
					continue
				}
				r.logger.Debug("templates reloaded", slog.String("file", event.Name))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				r.logger.Warn("template watcher error", slog.String("error", err.Error()))
			}
		}
	}()

	return nil
}

// Close stops the template watcher if one is running.
func (r *Renderer) Close() error {
	if r.watcher == nil {
		return nil
	}
	err := r.watcher.Close()
	r.watcher = nil
	return err
}

// LoadTemplates loads the template directory into the engine, enabling
// Context.HTML. In debug mode the directory is watched and templates reload
// on change.
func (g *Engine) LoadTemplates(dir string) error {
	renderer, err := NewRenderer(dir, g.logger)
	if err != nil {
		return err
	}
	if g.debug {
		if err := renderer.Watch(); err != nil {
			return err
		}
	}
	g.renderer = renderer
	return nil
}

// Renderer returns the engine's template renderer, or nil if LoadTemplates
// was never called.
func (g *Engine) Renderer() *Renderer {
	return g.renderer
}
