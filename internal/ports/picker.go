// Package ports defines the interfaces between the session layer and the
// dialog backends. Each backend (kdialog, zenity, portal, osascript, the
// Windows common dialog) implements Picker; the session detects which one
// is usable and forwards every request to it.
package ports

import (
	"context"

	"github.com/tejashwikalptaru/crossdialog/internal/domain"
)

// Picker is the contract every dialog backend implements.
//
// A Picker renders nothing itself: it translates a domain.Request into the
// backend's own argument conventions, invokes the backend, and normalizes
// the result into a list of selected paths.
type Picker interface {
	// Name returns the backend identifier used in preference lists,
	// logs and errors ("kdialog", "zenity", "portal", "osascript",
	// "native").
	Name() string

	// Available reports whether the backend can run on this system right
	// now (helper binary on PATH, portal service on the session bus, ...).
	// It must be cheap; the session probes candidates in priority order.
	Available(ctx context.Context) bool

	// Pick shows the dialog described by req and blocks until the user
	// answers or ctx is done.
	//
	// On success it returns the selected path(s), trimmed, one entry per
	// path. A dismissed dialog returns domain.ErrCancelled. Any other
	// failure returns a *domain.DialogError.
	Pick(ctx context.Context, req domain.Request) ([]string, error)
}
