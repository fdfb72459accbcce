package prompts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher hot-reloads prompt template overrides from a directory. A file
// named <section>.txt replaces the built-in template for that section when
// it is created or written; invalid overrides are logged and skipped, the
// current template stays in place.
type Watcher struct {
	dir     string
	library *Library
	watcher *fsnotify.Watcher
	logger  *zap.Logger
	stopCh  chan struct{}
}

// NewWatcher loads any existing overrides from dir and prepares a watcher
// over it.
func NewWatcher(dir string, library *Library, logger *zap.Logger) (*Watcher, error) {
	if err := loadOverrides(dir, library, logger); err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch prompt directory: %w", err)
	}

	return &Watcher{
		dir:     dir,
		library: library,
		watcher: fw,
		logger:  logger,
		stopCh:  make(chan struct{}),
	}, nil
}

// Start begins watching for override changes.
func (w *Watcher) Start() {
	go w.watchLoop()
	w.logger.Info("Prompt override watcher started", zap.String("dir", w.dir))
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
	w.logger.Info("Prompt override watcher stopped")
}

// watchLoop is the main loop that watches for file changes.
func (w *Watcher) watchLoop() {
	// Debounce timer to avoid double reloads on editor save patterns
	var debounceTimer *time.Timer
	debounceDuration := 100 * time.Millisecond

	for {
		select {
		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			name := event.Name

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDuration, func() {
				w.reloadFile(name)
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Prompt watcher error", zap.Error(err))
		}
	}
}

// reloadFile applies one changed override file.
func (w *Watcher) reloadFile(path string) {
	section, ok := sectionForFile(path)
	if !ok {
		return
	}

	if err := applyOverride(path, section, w.library); err != nil {
		w.logger.Error("Failed to reload prompt override, keeping current template",
			zap.String("section", section),
			zap.String("path", path),
			zap.Error(err),
		)
		return
	}

	w.logger.Info("Prompt override reloaded",
		zap.String("section", section),
		zap.String("path", path),
	)
}

// loadOverrides applies every recognized override file in dir.
func loadOverrides(dir string, library *Library, logger *zap.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read prompt directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		section, ok := sectionForFile(path)
		if !ok {
			continue
		}
		if err := applyOverride(path, section, library); err != nil {
			logger.Warn("Skipping invalid prompt override",
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}
		logger.Info("Prompt override loaded",
			zap.String("section", section),
			zap.String("path", path),
		)
	}

	return nil
}

// applyOverride reads one override file into the library.
func applyOverride(path, section string, library *Library) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read override: %w", err)
	}
	tmpl := strings.TrimSpace(string(data))
	if tmpl == "" {
		return fmt.Errorf("override file is empty")
	}
	return library.setTemplate(section, tmpl)
}

// sectionForFile maps an override filename to a known section name.
func sectionForFile(path string) (string, bool) {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, ".txt") {
		return "", false
	}
	section := strings.TrimSuffix(base, ".txt")
	for _, name := range SectionNames {
		if name == section {
			return section, true
		}
	}
	return "", false
}
