// Package mock provides a mock implementation of the Picker interface.
// This is used for testing the session layer without showing any dialog.
package mock

import (
	"context"
	"sync"

	"github.com/tejashwikalptaru/crossdialog/internal/domain"
	"github.com/tejashwikalptaru/crossdialog/internal/ports"
)

// Picker is a scripted Picker implementation. Configure the result with
// the setters, then inspect the recorded requests.
//
// Thread-safety: This implementation is thread-safe.
type Picker struct {
	mu sync.Mutex

	name      string
	available bool

	paths []string
	err   error

	requests []domain.Request
}

var _ ports.Picker = (*Picker)(nil)

// New creates a mock picker that is available and returns no paths.
func New(name string) *Picker {
	return &Picker{
		name:      name,
		available: true,
	}
}

// SetAvailable configures the availability probe result.
func (m *Picker) SetAvailable(available bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = available
}

// SetResult configures what the next Pick calls return.
func (m *Picker) SetResult(paths []string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paths = paths
	m.err = err
}

// Requests returns a copy of every request seen so far.
func (m *Picker) Requests() []domain.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// LastRequest returns the most recent request, or a zero request when
// Pick has not been called.
func (m *Picker) LastRequest() domain.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return domain.Request{}
	}
	return m.requests[len(m.requests)-1]
}

// Name implements ports.Picker.
func (m *Picker) Name() string { return m.name }

// Available implements ports.Picker.
func (m *Picker) Available(_ context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available
}

// Pick implements ports.Picker.
func (m *Picker) Pick(_ context.Context, req domain.Request) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	out := make([]string, len(m.paths))
	copy(out, m.paths)
	return out, nil
}
