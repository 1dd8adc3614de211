package gist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryNames(t *testing.T) {
	tests := []struct {
		display string
		encoded string
	}{
		{display: "main.go", encoded: "main.go"},
		{display: "src/main.go", encoded: "src___main.go"},
		{display: "a/b/c.txt", encoded: "a___b___c.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.display, func(t *testing.T) {
			assert.Equal(t, tt.encoded, EncodeDirectoryName(tt.display))
			assert.Equal(t, tt.display, DecodeDirectoryName(tt.encoded))
		})
	}
}

func TestParseURI(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    URI
		wantErr bool
	}{
		{name: "scheme", raw: "gist://abc/notes.md", want: URI{GistID: "abc", Filename: "notes.md"}},
		{name: "short form", raw: "abc/notes.md", want: URI{GistID: "abc", Filename: "notes.md"}},
		{name: "nested path is encoded", raw: "abc/src/main.go", want: URI{GistID: "abc", Filename: "src___main.go"}},
		{name: "missing filename", raw: "abc", wantErr: true},
		{name: "missing id", raw: "/notes.md", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseURI(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestURIString(t *testing.T) {
	assert.Equal(t, "gist://abc/src___main.go", NewURI("abc", "src___main.go").String())
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".py_", Extension("notes.py_"))
	assert.Equal(t, ".PY", Extension("NOTES.PY"))
	assert.Equal(t, ".gz", Extension("archive.tar.gz"))
	assert.Equal(t, "", Extension("Makefile"))
}
