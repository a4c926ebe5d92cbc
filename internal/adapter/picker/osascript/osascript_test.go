package osascript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tejashwikalptaru/crossdialog/internal/domain"
	"github.com/tejashwikalptaru/crossdialog/internal/logger"
)

func TestChooseClause(t *testing.T) {
	tests := []struct {
		name string
		req  domain.Request
		want string
	}{
		{
			name: "open file",
			req:  domain.Request{Kind: domain.KindOpenFile, Title: "Choose a file"},
			want: `choose file with prompt "Choose a file"`,
		},
		{
			name: "open file with extension filter",
			req: domain.Request{
				Kind:   domain.KindOpenFile,
				Title:  "Open",
				Filter: []domain.FilterGroup{{Patterns: []string{"*.png", "*.jpg"}}},
			},
			want: `choose file with prompt "Open" of type {"png", "jpg"}`,
		},
		{
			name: "inexpressible filter is dropped",
			req: domain.Request{
				Kind:   domain.KindOpenFile,
				Title:  "Open",
				Filter: []domain.FilterGroup{{Patterns: []string{"README*"}}},
			},
			want: `choose file with prompt "Open"`,
		},
		{
			name: "open multiple",
			req:  domain.Request{Kind: domain.KindOpenMultiple, Title: "Pick"},
			want: `choose file with prompt "Pick" with multiple selections allowed`,
		},
		{
			name: "save with start dir",
			req:  domain.Request{Kind: domain.KindSaveFile, Title: "Save", StartDir: "/Users/me"},
			want: `choose file name with prompt "Save" default location (POSIX file "/Users/me")`,
		},
		{
			name: "choose folder",
			req:  domain.Request{Kind: domain.KindChooseFolder, Title: "Folder"},
			want: `choose folder with prompt "Folder"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chooseClause(tt.req))
		})
	}
}

func TestScriptWrapsCancelHandler(t *testing.T) {
	s := script(domain.Request{Kind: domain.KindOpenFile, Title: "Open"})

	assert.True(t, strings.HasPrefix(s, "try\n"))
	assert.Contains(t, s, "on error number -128")
	assert.True(t, strings.HasSuffix(s, "end try"))
}

func TestScriptMultipleEmitsOnePathPerLine(t *testing.T) {
	s := script(domain.Request{Kind: domain.KindOpenMultiple, Title: "Pick"})

	assert.Contains(t, s, "repeat with f in theFiles")
	assert.Contains(t, s, `POSIX path of f & "\n"`)
}

func TestQuoteEscapes(t *testing.T) {
	assert.Equal(t, `"plain"`, quote("plain"))
	assert.Equal(t, `"say \"hi\""`, quote(`say "hi"`))
	assert.Equal(t, `"back\\slash"`, quote(`back\slash`))
	assert.Equal(t, `"two\nlines"`, quote("two\nlines"))
	assert.Equal(t, `"cr\rlf\n"`, quote("cr\rlf\n"))
}

func TestChooseClauseTitleWithNewlineStaysOneStatement(t *testing.T) {
	clause := chooseClause(domain.Request{Kind: domain.KindOpenFile, Title: "line one\nline two"})
	assert.NotContains(t, clause, "\n")
	assert.Contains(t, clause, `"line one\nline two"`)
}

func TestCleanPathTrimsFolderSlash(t *testing.T) {
	assert.Equal(t, "/Users/me", cleanPath("/Users/me/", domain.KindChooseFolder))
	assert.Equal(t, "/", cleanPath("/", domain.KindChooseFolder))
	assert.Equal(t, "/Users/me/", cleanPath("/Users/me/", domain.KindOpenFile))
}

func TestName(t *testing.T) {
	p := New(logger.NewTestLogger(), nil)
	assert.Equal(t, "osascript", p.Name())
}
