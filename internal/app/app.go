package app

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/quilledit/quill/internal/config"
	"github.com/quilledit/quill/internal/engine"
	"github.com/quilledit/quill/internal/input"
	"github.com/quilledit/quill/internal/renderer"
	"github.com/quilledit/quill/internal/renderer/backend"
	"github.com/quilledit/quill/internal/storage"
)

// App coordinates the editor core, file storage, renderer, and input
// handling, and runs the main event loop.
type App struct {
	mu sync.Mutex

	logger  *Logger
	logFile io.Closer

	cfg        config.Config
	cfgWatcher *config.Watcher

	editor  *engine.Editor
	store   *storage.Store
	keymap  *input.Keymap
	clip    *Clipboard
	state   *SessionState
	rend    *renderer.Renderer
	backend backend.Backend

	docName   string
	statePath string
	readOnly  bool

	running  atomic.Bool
	done     chan struct{}
	doneOnce sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty uses
	// the default location.
	ConfigPath string

	// File is the file to open on startup. Empty starts with an
	// empty buffer.
	File string

	// LogLevel overrides the configured logging verbosity.
	LogLevel string

	// ReadOnly blocks all content mutations.
	ReadOnly bool
}

// New creates an App with the given options: configuration is loaded,
// the target file (if any) is read, and session state is restored.
func New(opts Options) (*App, error) {
	a := &App{
		opts:     opts,
		readOnly: opts.ReadOnly,
		keymap:   input.Default(),
		clip:     NewClipboard(),
		done:     make(chan struct{}),
	}

	if err := a.bootstrap(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) bootstrap() error {
	cfgPath := a.opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	a.cfg = cfg

	if err := a.setupLogger(); err != nil {
		return &InitError{Component: "logging", Err: err}
	}

	a.statePath = cfg.DefaultStatePath()
	a.state = LoadState(a.statePath)

	if err := a.openTarget(); err != nil {
		return &InitError{Component: "storage", Err: err}
	}

	if cfgPath != "" {
		a.watchConfig(cfgPath)
	}

	a.logger.Info("session %s started", a.state.SessionID)
	return nil
}

// setupLogger builds the application logger from config and options.
// Logs go to the configured file; without one they are discarded, the
// terminal UI owns stderr.
func (a *App) setupLogger() error {
	level := a.cfg.Logging.Level
	if a.opts.LogLevel != "" {
		level = a.opts.LogLevel
	}

	out := io.Writer(io.Discard)
	if a.cfg.Logging.Path != "" {
		if err := os.MkdirAll(filepath.Dir(a.cfg.Logging.Path), 0o755); err != nil {
			return err
		}
		f, err := os.OpenFile(a.cfg.Logging.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		a.logFile = f
		out = f
	}

	a.logger = NewLogger(LoggerConfig{
		Level:  ParseLogLevel(level),
		Output: out,
		Prefix: "quill",
	})
	return nil
}

// openTarget creates the store and editor for the startup file.
func (a *App) openTarget() error {
	storeOpts := []storage.Option{}
	if a.opts.File != "" {
		storeOpts = append(storeOpts, storage.WithTarget(a.opts.File))
	}
	if ending, ok := a.cfg.LineEnding(); ok {
		storeOpts = append(storeOpts, storage.WithLineEnding(ending))
	}
	a.store = storage.New(storeOpts...)

	content := ""
	if a.store.HasTarget() {
		text, err := a.store.Load()
		switch {
		case err == nil:
			content = text
		case errors.Is(err, fs.ErrNotExist):
			// New file, start empty and create it on first save.
		default:
			return err
		}
		a.docName = filepath.Base(a.store.Target())
	}

	a.editor = engine.New(
		engine.WithContent(content),
		engine.WithWrapWidth(a.cfg.Editor.WrapWidth),
	)

	if pos, ok := a.state.LastPosition(a.store.Target()); ok {
		a.editor.MoveTo(pos)
	}
	return nil
}

// watchConfig starts a watcher that applies wrap width changes live.
// Watch failures are logged and the app runs with the loaded config.
func (a *App) watchConfig(path string) {
	w, err := config.Watch(path, func(cfg config.Config) {
		a.mu.Lock()
		a.cfg = cfg
		a.editor.SetWrapWidth(cfg.Editor.WrapWidth)
		a.mu.Unlock()
		a.logger.Info("config reloaded, wrap width %d", cfg.Editor.WrapWidth)
		a.requestRedraw()
	}, config.WithErrorHandler(func(err error) {
		a.logger.Warn("config reload failed: %v", err)
	}))
	if err != nil {
		a.logger.Warn("config watch unavailable: %v", err)
		return
	}
	a.cfgWatcher = w
}

// Editor returns the underlying editor. Intended for tests.
func (a *App) Editor() *engine.Editor {
	return a.editor
}

// Clipboard returns the clipboard register.
func (a *App) Clipboard() *Clipboard {
	return a.clip
}

// Logger returns the application logger.
func (a *App) Logger() *Logger {
	if a.logger == nil {
		return NullLogger
	}
	return a.logger
}

// SetBackend sets the terminal backend. Must be called before Run.
func (a *App) SetBackend(b backend.Backend) error {
	if a.running.Load() {
		return ErrAlreadyRunning
	}
	a.backend = b
	return nil
}

// Run initializes the backend and processes events until quit. Returns
// ErrQuit on a normal exit request.
func (a *App) Run() error {
	if a.backend == nil {
		return ErrNoBackend
	}
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if err := a.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer a.backend.Shutdown()

	a.rend = renderer.New(a.backend)
	a.redraw()

	events := a.startInputPolling()

	for {
		select {
		case <-a.done:
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := a.handleEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					a.persistSession()
					return err
				}
				a.logger.Error("event handling failed: %v", err)
			}
			a.redraw()
		}
	}
}

// startInputPolling polls the backend on a goroutine. PollEvent blocks,
// so the backend must be shut down to unblock it on exit.
func (a *App) startInputPolling() <-chan backend.Event {
	events := make(chan backend.Event, 64)

	go func() {
		defer close(events)
		for a.running.Load() {
			ev := a.backend.PollEvent()
			if !a.running.Load() {
				return
			}
			select {
			case events <- ev:
			case <-a.done:
				return
			}
		}
	}()

	return events
}

func (a *App) redraw() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.rend != nil {
		a.rend.Draw(a.editor, a.docName)
	}
}

// requestRedraw posts a no-op event so the run loop repaints. Used by
// goroutines that change state outside the event loop.
func (a *App) requestRedraw() {
	if a.backend != nil && a.running.Load() {
		a.backend.PostEvent(backend.Event{Type: backend.EventResize})
	}
}

// persistSession records the open file and cursor position.
func (a *App) persistSession() {
	if a.statePath == "" {
		return
	}
	a.state.Touch(a.store.Target(), a.editor.ActivePosition())
	if err := a.state.Save(a.statePath); err != nil {
		a.logger.Warn("session state not saved: %v", err)
	}
}

// Shutdown stops the event loop and releases resources. Safe to call
// more than once.
func (a *App) Shutdown() {
	a.doneOnce.Do(func() {
		a.running.Store(false)
		close(a.done)
		if a.cfgWatcher != nil {
			_ = a.cfgWatcher.Close()
		}
		if a.backend != nil {
			a.backend.Shutdown()
		}
		if a.logFile != nil {
			_ = a.logFile.Close()
		}
	})
}
