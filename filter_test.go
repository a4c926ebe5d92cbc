package crossdialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tejashwikalptaru/crossdialog/internal/domain"
)

func TestFilterShapes(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []domain.FilterGroup
	}{
		{
			name:   "zero value",
			filter: Filter{},
			want:   nil,
		},
		{
			name:   "single wildcard",
			filter: FilterPattern("*.txt"),
			want:   []domain.FilterGroup{{Patterns: []string{"*.txt"}}},
		},
		{
			name:   "wildcard list",
			filter: FilterPatterns("*.png", "*.jpg"),
			want:   []domain.FilterGroup{{Patterns: []string{"*.png", "*.jpg"}}},
		},
		{
			name:   "wildcard groups",
			filter: FilterGroups([]string{"*.png", "*.jpg"}, []string{"*.txt"}),
			want: []domain.FilterGroup{
				{Patterns: []string{"*.png", "*.jpg"}},
				{Patterns: []string{"*.txt"}},
			},
		},
		{
			name: "description map is ordered by description",
			filter: FilterMap(map[string][]string{
				"Text files": {"*.txt"},
				"Images":     {"*.png", "*.jpg"},
			}),
			want: []domain.FilterGroup{
				{Description: "Images", Patterns: []string{"*.png", "*.jpg"}},
				{Description: "Text files", Patterns: []string{"*.txt"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.normalized())
		})
	}
}

func TestFilterNormalizationDropsEmptyInput(t *testing.T) {
	require.Nil(t, FilterPatterns().normalized())
	require.Nil(t, FilterPattern("  ").normalized())
	require.Nil(t, FilterGroups(nil, []string{}).normalized())
}
