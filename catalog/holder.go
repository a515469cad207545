package catalog

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/alexslade/ash/core/registry"
	"github.com/alexslade/ash/core/schema"
)

// Holder provides thread-safe access to a schema catalog with hot reload
// support. A failed reload keeps the previous catalog.
type Holder struct {
	mu       sync.RWMutex
	reg      *registry.Registry
	dir      string
	calls    schema.Callables
	logger   zerolog.Logger
	watcher  *fsnotify.Watcher
	onChange []func(*registry.Registry)
	stopCh   chan struct{}
}

// NewHolder creates a holder and loads the initial catalog from dir.
func NewHolder(dir string, calls schema.Callables, logger zerolog.Logger) (*Holder, error) {
	reg, err := Load(dir, calls)
	if err != nil {
		return nil, err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("absolute path: %w", err)
	}

	return &Holder{
		reg:    reg,
		dir:    absDir,
		calls:  calls,
		logger: logger,
		stopCh: make(chan struct{}),
	}, nil
}

// Get returns the current catalog (thread-safe).
func (h *Holder) Get() *registry.Registry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.reg
}

// Reload reloads the catalog from disk.
// Returns an error if loading fails (keeps the old catalog).
func (h *Holder) Reload() error {
	h.logger.Info().Str("dir", h.dir).Msg("reloading schema catalog")

	newReg, err := Load(h.dir, h.calls)
	if err != nil {
		h.logger.Error().Err(err).Msg("catalog reload failed, keeping old catalog")
		return fmt.Errorf("reload catalog: %w", err)
	}

	h.mu.Lock()
	oldReg := h.reg
	h.reg = newReg
	callbacks := h.onChange
	h.mu.Unlock()

	if oldReg.Len() != newReg.Len() {
		h.logger.Info().
			Int("old", oldReg.Len()).
			Int("new", newReg.Len()).
			Msg("schema count changed")
	}

	for _, fn := range callbacks {
		fn(newReg)
	}

	h.logger.Info().Msg("schema catalog reloaded successfully")
	return nil
}

// OnChange registers a callback to be called when the catalog changes.
func (h *Holder) OnChange(fn func(*registry.Registry)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onChange = append(h.onChange, fn)
}

// Watch starts watching the catalog directory for changes.
// Changes to declaration files trigger automatic reload.
func (h *Holder) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	h.watcher = watcher

	if err := watcher.Add(h.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}

	go h.watchLoop()

	h.logger.Info().Str("dir", h.dir).Msg("watching schema catalog for changes")
	return nil
}

// Stop stops watching for file changes.
func (h *Holder) Stop() {
	close(h.stopCh)
	if h.watcher != nil {
		h.watcher.Close()
	}
}

func (h *Holder) watchLoop() {
	for {
		select {
		case event, ok := <-h.watcher.Events:
			if !ok {
				return
			}

			if !isDeclarationFile(event.Name) {
				continue
			}

			// React to write, create, or remove (atomic save = create)
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) != 0 {
				h.logger.Debug().
					Str("event", event.Op.String()).
					Str("file", event.Name).
					Msg("schema declaration changed")

				if err := h.Reload(); err != nil {
					h.logger.Error().Err(err).Msg("file watch reload failed")
				}
			}

		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error().Err(err).Msg("file watcher error")

		case <-h.stopCh:
			return
		}
	}
}

func isDeclarationFile(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
