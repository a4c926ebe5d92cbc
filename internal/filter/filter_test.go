package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tejashwikalptaru/crossdialog/internal/domain"
)

func TestCleanDropsEmptyGroupsAndPatterns(t *testing.T) {
	groups := []domain.FilterGroup{
		{Description: "Images", Patterns: []string{" *.png ", "", "*.jpg"}},
		{Description: "Empty", Patterns: []string{"", "   "}},
		{Patterns: []string{"*.txt"}},
	}

	cleaned := Clean(groups)
	require.Len(t, cleaned, 2)
	assert.Equal(t, domain.FilterGroup{Description: "Images", Patterns: []string{"*.png", "*.jpg"}}, cleaned[0])
	assert.Equal(t, domain.FilterGroup{Patterns: []string{"*.txt"}}, cleaned[1])
}

func TestCleanAllEmptyIsNil(t *testing.T) {
	assert.Nil(t, Clean(nil))
	assert.Nil(t, Clean([]domain.FilterGroup{{Description: "x"}}))
}

func TestKDialog(t *testing.T) {
	tests := []struct {
		name   string
		groups []domain.FilterGroup
		want   string
	}{
		{
			name:   "single pattern",
			groups: []domain.FilterGroup{{Patterns: []string{"*.txt"}}},
			want:   "*.txt",
		},
		{
			name:   "described group",
			groups: []domain.FilterGroup{{Description: "Images", Patterns: []string{"*.png", "*.jpg"}}},
			want:   "Images (*.png *.jpg)",
		},
		{
			name: "multiple groups",
			groups: []domain.FilterGroup{
				{Description: "Images", Patterns: []string{"*.png"}},
				{Patterns: []string{"*.txt", "*.md"}},
			},
			want: "Images (*.png) | *.txt *.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KDialog(tt.groups))
		})
	}
}

func TestZenity(t *testing.T) {
	groups := []domain.FilterGroup{
		{Description: "Images", Patterns: []string{"*.png", "*.jpg"}},
		{Patterns: []string{"*.txt"}},
	}

	assert.Equal(t, []string{"Images | *.png *.jpg", "*.txt"}, Zenity(groups))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Images", Label(domain.FilterGroup{Description: "Images", Patterns: []string{"*.png"}}))
	assert.Equal(t, "*.png *.jpg", Label(domain.FilterGroup{Patterns: []string{"*.png", "*.jpg"}}))
}

func TestExtensions(t *testing.T) {
	groups := []domain.FilterGroup{
		{Description: "Images", Patterns: []string{"*.png", "*.jpg"}},
		{Patterns: []string{"*.png", "*.txt"}},
	}

	exts, ok := Extensions(groups)
	require.True(t, ok)
	// Duplicates collapse, order preserved.
	assert.Equal(t, []string{"png", "jpg", "txt"}, exts)
}

func TestExtensionsRejectsNonExtensionPatterns(t *testing.T) {
	for _, pattern := range []string{"*", "README*", "*.??", "*.c h", "name.txt"} {
		_, ok := Extensions([]domain.FilterGroup{{Patterns: []string{pattern}}})
		assert.False(t, ok, "pattern %q should not flatten to an extension", pattern)
	}
}
