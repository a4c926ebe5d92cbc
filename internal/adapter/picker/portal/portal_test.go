package portal

import (
	"context"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tejashwikalptaru/crossdialog/internal/domain"
	"github.com/tejashwikalptaru/crossdialog/internal/logger"
	"github.com/tejashwikalptaru/crossdialog/internal/testutil"
)

func TestTranslateOpenFile(t *testing.T) {
	p := New(logger.NewTestLogger())

	method, options := p.translate(domain.Request{
		Kind:     domain.KindOpenFile,
		Title:    "Open",
		StartDir: "/home/me",
		Filter:   []domain.FilterGroup{{Description: "Images", Patterns: []string{"*.png"}}},
	})

	assert.Equal(t, "OpenFile", method)
	assert.NotContains(t, options, "multiple")
	assert.NotContains(t, options, "directory")
	assert.Contains(t, options, "handle_token")

	// The folder travels as a null-terminated byte array.
	assert.Equal(t, append([]byte("/home/me"), 0), options["current_folder"].Value())

	filters, ok := options["filters"].Value().([]fileFilter)
	require.True(t, ok)
	require.Len(t, filters, 1)
	assert.Equal(t, "Images", filters[0].Name)
	assert.Equal(t, []filterEntry{{Kind: 0, Pattern: "*.png"}}, filters[0].Entries)
}

func TestTranslateKinds(t *testing.T) {
	p := New(logger.NewTestLogger())

	method, options := p.translate(domain.Request{Kind: domain.KindOpenMultiple, Title: "Pick"})
	assert.Equal(t, "OpenFile", method)
	assert.Equal(t, true, options["multiple"].Value())

	method, options = p.translate(domain.Request{Kind: domain.KindSaveFile, Title: "Save"})
	assert.Equal(t, "SaveFile", method)
	assert.NotContains(t, options, "directory")

	method, options = p.translate(domain.Request{Kind: domain.KindChooseFolder, Title: "Folder"})
	assert.Equal(t, "OpenFile", method)
	assert.Equal(t, true, options["directory"].Value())
}

func TestTranslateSaveIgnoresFilter(t *testing.T) {
	p := New(logger.NewTestLogger())

	_, options := p.translate(domain.Request{
		Kind:   domain.KindSaveFile,
		Title:  "Save",
		Filter: []domain.FilterGroup{{Patterns: []string{"*.png"}}},
	})
	assert.NotContains(t, options, "filters")
}

func TestDecodeResponseSuccess(t *testing.T) {
	body := []interface{}{
		uint32(responseSuccess),
		map[string]dbus.Variant{
			"uris": dbus.MakeVariant([]string{
				"file:///home/me/a.png",
				"file:///home/me/with%20space.png",
			}),
		},
	}

	paths, err := decodeResponse(body)
	require.NoError(t, err)
	assert.Equal(t, []string{"/home/me/a.png", "/home/me/with space.png"}, paths)
}

func TestDecodeResponseCancelled(t *testing.T) {
	body := []interface{}{uint32(responseCancelled), map[string]dbus.Variant{}}

	_, err := decodeResponse(body)
	assert.ErrorIs(t, err, domain.ErrCancelled)
}

func TestAvailableLeavesNoStrayGoroutines(t *testing.T) {
	// The shared session-bus connection keeps reader goroutines for the
	// process lifetime; only those are expected to remain.
	defer testutil.VerifyNoLeaks(t, testutil.IgnoreDBusGoroutines()...)

	p := New(logger.NewTestLogger())
	// Either answer is fine; on hosts without a session bus the probe
	// must fail cleanly instead of leaking a dialer.
	p.Available(context.Background())
}

func TestDecodeResponseMalformed(t *testing.T) {
	_, err := decodeResponse([]interface{}{uint32(0)})
	assert.Error(t, err)

	_, err = decodeResponse([]interface{}{"not-a-status", map[string]dbus.Variant{}})
	assert.Error(t, err)
}
