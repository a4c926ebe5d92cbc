// Package testutil provides testing utilities for the crossdialog library.
package testutil

import (
	"testing"

	"go.uber.org/goleak"
)

// VerifyNoLeaks should be deferred at the start of tests that spawn goroutines.
// It verifies that no goroutines were leaked during the test.
func VerifyNoLeaks(t *testing.T, opts ...goleak.Option) {
	t.Helper()
	goleak.VerifyNone(t, opts...)
}

// IgnoreDBusGoroutines returns goleak options to ignore the background
// reader the shared D-Bus session connection keeps alive.
// Use this when testing components that touch the portal backend.
func IgnoreDBusGoroutines() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreAnyFunction("github.com/godbus/dbus/v5.(*Conn).inWorker"),
		goleak.IgnoreAnyFunction("github.com/godbus/dbus/v5.(*Conn).outWorker"),
		// The context watcher newConn spawns alongside the workers; it
		// also lives for the shared connection's (process) lifetime.
		goleak.IgnoreAnyFunction("github.com/godbus/dbus/v5.newConn.func1"),
	}
}
