// Package crossdialog invokes the native file and folder selection
// dialogs of the running desktop: kdialog, the xdg-desktop-portal
// service or zenity on Linux, AppleScript's chooser on macOS, the
// common dialogs on Windows. The library renders nothing itself; it
// detects which backend is usable, translates one uniform call into
// that backend's argument conventions, and normalizes the answer.
//
// The four operations share one contract: a selection returns the
// chosen path(s), a dismissed dialog returns ErrCancelled, and a
// backend failure returns a descriptive error.
package crossdialog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/tejashwikalptaru/crossdialog/internal/config"
	"github.com/tejashwikalptaru/crossdialog/internal/domain"
	"github.com/tejashwikalptaru/crossdialog/internal/logger"
	"github.com/tejashwikalptaru/crossdialog/internal/ports"
)

// Errors returned by dialog calls.
var (
	// ErrCancelled is returned when the user dismisses a dialog without
	// making a selection.
	ErrCancelled = domain.ErrCancelled

	// ErrNoImplementation is returned by New when no usable dialog
	// backend exists on the running system.
	ErrNoImplementation = domain.ErrNoImplementation

	// ErrUnknownPicker is returned by New when the preference list names
	// only backends this build does not know.
	ErrUnknownPicker = domain.ErrUnknownPicker
)

// Options customizes a single dialog call. The zero value is valid:
// default title, backend-chosen start directory, no filter.
type Options struct {
	// Title is the dialog window title. Empty selects a per-operation
	// default ("Choose a file", ...).
	Title string

	// StartDir is the directory the dialog starts in. Empty falls back
	// to the FILEDIALOG_CWD environment variable, then to the directory
	// of the previous selection in this session.
	StartDir string

	// Filter restricts selectable file types for the open operations.
	// Save and folder dialogs ignore it.
	Filter Filter
}

// Config holds session configuration.
type Config struct {
	// Pickers is the backend preference list, highest priority first
	// ("kdialog", "portal", "zenity", "osascript", "native"). Empty
	// falls back to the CROSSDIALOG_PICKER environment variable, the
	// preference file, then the per-platform default order.
	Pickers []string

	// Logger receives structured logs. Nil creates the default
	// stderr logger controlled by CROSSDIALOG_LOG_LEVEL.
	Logger *slog.Logger

	// ConfigPath overrides the preference file location. Empty uses
	// the crossdialog/config.yaml in the user configuration directory.
	ConfigPath string
}

// Session dispatches dialog calls to the backend detected at
// construction time. It remembers the directory of the last selection
// and starts the next dialog there when the caller gives no start
// directory. Sessions are safe for concurrent use.
type Session struct {
	logger *slog.Logger
	picker ports.Picker

	mu      sync.Mutex
	lastDir string
}

// New detects the best available dialog backend and returns a session
// bound to it. Detection walks the preference list in order and keeps
// the first backend whose availability probe succeeds; when none does,
// New returns ErrNoImplementation.
func New(cfg Config) (*Session, error) {
	return newSession(cfg, nil)
}

// newSession exists so tests can inject scripted pickers.
func newSession(cfg Config, candidates []ports.Picker) (*Session, error) {
	log := cfg.Logger
	if log == nil {
		log = logger.NewLogger(logger.DefaultConfig())
	}

	fileCfg := config.Load(cfg.ConfigPath, log)
	// The file's log_level only applies when neither the caller nor the
	// environment picked a level; CROSSDIALOG_LOG_LEVEL wins over the
	// file just as CROSSDIALOG_PICKER wins over its pickers entry.
	if cfg.Logger == nil && fileCfg.LogLevel != "" && os.Getenv(logger.EnvLogLevel) == "" {
		if level, ok := logger.ParseLevel(fileCfg.LogLevel); ok {
			log = logger.NewLogger(logger.Config{Level: level, Format: "text"})
		}
	}

	s := &Session{logger: log}

	if candidates == nil {
		candidates = platformPickers(log, s.preferredDir)
	}
	byName := make(map[string]ports.Picker, len(candidates))
	for _, p := range candidates {
		byName[p.Name()] = p
	}

	prefs := cfg.Pickers
	if len(prefs) == 0 {
		prefs = fileCfg.Pickers
	}
	if len(prefs) == 0 {
		prefs = defaultPickerOrder()
	}

	ctx := context.Background()
	known := false
	for _, name := range prefs {
		p, ok := byName[name]
		if !ok {
			log.Warn("unknown picker in preference list", slog.String("picker", name))
			continue
		}
		known = true
		if !p.Available(ctx) {
			log.Debug("picker not available", slog.String("picker", name))
			continue
		}
		s.picker = p
		break
	}
	if s.picker == nil {
		// A list of nothing but unknown names is a caller mistake, not a
		// system without backends.
		if !known {
			return nil, ErrUnknownPicker
		}
		return nil, ErrNoImplementation
	}

	log.Debug("selected dialog backend", slog.String("picker", s.picker.Name()))
	return s, nil
}

// PickerName reports which backend the session is bound to.
func (s *Session) PickerName() string {
	return s.picker.Name()
}

// OpenFile shows a file selection dialog and returns the chosen path.
func (s *Session) OpenFile(ctx context.Context, opts Options) (string, error) {
	return s.pickOne(ctx, domain.KindOpenFile, opts)
}

// OpenMultiple shows a multi-selection file dialog and returns the
// chosen paths.
func (s *Session) OpenMultiple(ctx context.Context, opts Options) ([]string, error) {
	return s.pick(ctx, domain.KindOpenMultiple, opts)
}

// SaveFile shows a save dialog and returns the chosen target path. The
// file needs not exist; nothing is created.
func (s *Session) SaveFile(ctx context.Context, opts Options) (string, error) {
	return s.pickOne(ctx, domain.KindSaveFile, opts)
}

// ChooseFolder shows a folder selection dialog and returns the chosen
// directory.
func (s *Session) ChooseFolder(ctx context.Context, opts Options) (string, error) {
	return s.pickOne(ctx, domain.KindChooseFolder, opts)
}

func (s *Session) pickOne(ctx context.Context, kind domain.Kind, opts Options) (string, error) {
	paths, err := s.pick(ctx, kind, opts)
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

func (s *Session) pick(ctx context.Context, kind domain.Kind, opts Options) ([]string, error) {
	req := domain.Request{
		Kind:     kind,
		Title:    opts.Title,
		StartDir: opts.StartDir,
	}
	if req.Title == "" {
		req.Title = kind.DefaultTitle()
	}
	if req.StartDir == "" {
		req.StartDir = s.preferredDir()
	}
	if kind.Filterable() {
		req.Filter = opts.Filter.normalized()
	}

	paths, err := s.picker.Pick(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, ErrCancelled
	}

	s.rememberDir(paths[0])
	s.logger.Debug("dialog selection",
		slog.String("picker", s.picker.Name()),
		slog.String("kind", kind.String()),
		slog.Int("paths", len(paths)))
	return paths, nil
}

// preferredDir resolves the start directory used when the caller gives
// none: the FILEDIALOG_CWD environment variable wins, then the
// directory of the last selection.
func (s *Session) preferredDir() string {
	if dir := config.StartDir(); dir != "" {
		return dir
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastDir
}

func (s *Session) rememberDir(path string) {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastDir = dir
}

// Package-level convenience API over a lazily created default session.

var (
	defaultMu      sync.Mutex
	defaultSession *Session
)

func defaultSessionLazy() (*Session, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultSession == nil {
		s, err := New(Config{})
		if err != nil {
			return nil, err
		}
		defaultSession = s
	}
	return defaultSession, nil
}

// OpenFile shows a file selection dialog using the default session.
func OpenFile(ctx context.Context, opts Options) (string, error) {
	s, err := defaultSessionLazy()
	if err != nil {
		return "", err
	}
	return s.OpenFile(ctx, opts)
}

// OpenMultiple shows a multi-selection file dialog using the default
// session.
func OpenMultiple(ctx context.Context, opts Options) ([]string, error) {
	s, err := defaultSessionLazy()
	if err != nil {
		return nil, err
	}
	return s.OpenMultiple(ctx, opts)
}

// SaveFile shows a save dialog using the default session.
func SaveFile(ctx context.Context, opts Options) (string, error) {
	s, err := defaultSessionLazy()
	if err != nil {
		return "", err
	}
	return s.SaveFile(ctx, opts)
}

// ChooseFolder shows a folder selection dialog using the default
// session.
func ChooseFolder(ctx context.Context, opts Options) (string, error) {
	s, err := defaultSessionLazy()
	if err != nil {
		return "", err
	}
	return s.ChooseFolder(ctx, opts)
}
