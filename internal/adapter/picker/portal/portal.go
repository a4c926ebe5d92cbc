// Package portal implements the dialog backend for the
// org.freedesktop.portal.FileChooser D-Bus service. The portal asks the
// running desktop environment to render its own chooser, so this one
// backend covers both GTK and Qt desktops without linking either toolkit.
package portal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/url"

	"github.com/godbus/dbus/v5"

	"github.com/tejashwikalptaru/crossdialog/internal/domain"
	"github.com/tejashwikalptaru/crossdialog/internal/filter"
	"github.com/tejashwikalptaru/crossdialog/internal/ports"
)

// Name is the identifier used in preference lists.
const Name = "portal"

const (
	portalBusName    = "org.freedesktop.portal.Desktop"
	portalObjectPath = "/org/freedesktop/portal/desktop"
	chooserInterface = "org.freedesktop.portal.FileChooser"
	requestInterface = "org.freedesktop.portal.Request"
	responseSignal   = requestInterface + ".Response"
)

// Response statuses defined by the portal spec.
const (
	responseSuccess   = 0
	responseCancelled = 1
)

// filterEntry is one pattern inside a portal filter rule. Kind 0 marks a
// glob pattern (kind 1 would be a MIME type, which this library does not
// accept as input).
type filterEntry struct {
	Kind    uint32
	Pattern string
}

// fileFilter matches the portal's a(sa(us)) filter signature.
type fileFilter struct {
	Name    string
	Entries []filterEntry
}

// Picker talks to the FileChooser portal over the session bus.
type Picker struct {
	logger *slog.Logger
}

var _ ports.Picker = (*Picker)(nil)

// New creates the portal backend.
func New(log *slog.Logger) *Picker {
	return &Picker{logger: log.With(slog.String("picker", Name))}
}

// Name implements ports.Picker.
func (p *Picker) Name() string { return Name }

// Available reports whether the portal service owns its bus name on the
// session bus.
func (p *Picker) Available(_ context.Context) bool {
	conn, err := dbus.SessionBus() // Shared connection, don't close.
	if err != nil {
		return false
	}

	var owned bool
	err = conn.BusObject().Call("org.freedesktop.DBus.NameHasOwner", 0, portalBusName).Store(&owned)
	if err != nil {
		p.logger.Debug("portal availability probe failed", slog.Any("error", err))
		return false
	}
	return owned
}

// Pick implements ports.Picker.
func (p *Picker) Pick(ctx context.Context, req domain.Request) ([]string, error) {
	paths, err := p.pick(ctx, req)
	if err != nil && !errors.Is(err, domain.ErrCancelled) && ctx.Err() == nil {
		return nil, domain.NewDialogError(Name, req.Kind.String(), "portal call failed", err)
	}
	return paths, err
}

func (p *Picker) pick(ctx context.Context, req domain.Request) ([]string, error) {
	// A private connection so closing it tears down signal delivery
	// without touching the process-wide shared bus.
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err = conn.AddMatchSignal(
		dbus.WithMatchInterface(requestInterface),
		dbus.WithMatchMember("Response"),
	); err != nil {
		return nil, err
	}

	signals := make(chan *dbus.Signal, 10)
	conn.Signal(signals)

	method, options := p.translate(req)

	obj := conn.Object(portalBusName, dbus.ObjectPath(portalObjectPath))
	call := obj.Call(chooserInterface+"."+method, 0, "", req.Title, options)
	if call.Err != nil {
		return nil, call.Err
	}

	// The call returns the object path of the pending request; the answer
	// arrives later as a Response signal on that path.
	var handle dbus.ObjectPath
	if err = call.Store(&handle); err != nil {
		return nil, err
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case sig, ok := <-signals:
			if !ok {
				return nil, fmt.Errorf("session bus connection closed")
			}
			if sig.Name != responseSignal || sig.Path != handle {
				continue
			}
			return decodeResponse(sig.Body)
		}
	}
}

// translate maps the request onto a portal method name and options map.
func (p *Picker) translate(req domain.Request) (string, map[string]dbus.Variant) {
	options := map[string]dbus.Variant{
		"handle_token": dbus.MakeVariant(fmt.Sprintf("crossdialog_%d", rand.Uint32())),
	}

	method := "OpenFile"
	switch req.Kind {
	case domain.KindOpenMultiple:
		options["multiple"] = dbus.MakeVariant(true)
	case domain.KindSaveFile:
		method = "SaveFile"
	case domain.KindChooseFolder:
		options["directory"] = dbus.MakeVariant(true)
	}

	if req.Kind.Filterable() {
		if filters := portalFilters(req.Filter); len(filters) > 0 {
			options["filters"] = dbus.MakeVariant(filters)
		}
	}

	if req.StartDir != "" {
		// The portal wants the folder as a null-terminated byte array.
		options["current_folder"] = dbus.MakeVariant(append([]byte(req.StartDir), 0))
	}

	return method, options
}

// portalFilters converts normalized filter groups into the portal's
// filter structure.
func portalFilters(groups []domain.FilterGroup) []fileFilter {
	filters := make([]fileFilter, 0, len(groups))
	for _, g := range groups {
		entries := make([]filterEntry, 0, len(g.Patterns))
		for _, pattern := range g.Patterns {
			entries = append(entries, filterEntry{Kind: 0, Pattern: pattern})
		}
		filters = append(filters, fileFilter{
			Name:    filter.Label(g),
			Entries: entries,
		})
	}
	return filters
}

// decodeResponse unpacks a Response signal body: a status word and a
// results map whose "uris" entry holds file:// URIs.
func decodeResponse(body []interface{}) ([]string, error) {
	if len(body) < 2 {
		return nil, fmt.Errorf("malformed portal response: %d body values", len(body))
	}

	status, ok := body[0].(uint32)
	if !ok {
		return nil, fmt.Errorf("malformed portal response status %T", body[0])
	}
	if status != responseSuccess {
		// 1 is an explicit cancel, 2 is "something went wrong"; both end
		// the dialog without a selection.
		return nil, domain.ErrCancelled
	}

	results, ok := body[1].(map[string]dbus.Variant)
	if !ok {
		return nil, fmt.Errorf("malformed portal response results %T", body[1])
	}

	uris, ok := results["uris"].Value().([]string)
	if !ok || len(uris) == 0 {
		return nil, domain.ErrCancelled
	}

	paths := make([]string, 0, len(uris))
	for _, uri := range uris {
		u, err := url.ParseRequestURI(uri)
		if err != nil {
			return nil, fmt.Errorf("portal returned unparsable uri %q: %w", uri, err)
		}
		paths = append(paths, u.Path)
	}
	return paths, nil
}
