package gist

import (
	"context"
	"path"
	"time"
)

// Gist is a snapshot of a remote gist as returned by the store.
type Gist struct {
	ID          string
	Description string
	Public      bool
	Owner       string
	HTMLURL     string
	Files       []File
	UpdatedAt   time.Time
}

// File is a single file of a gist. Content is only populated when the
// store returned it inline.
type File struct {
	Filename  string
	Language  string
	RawURL    string
	Size      int
	Truncated bool
	Content   string
}

// Filenames returns the file names of the gist in store order.
func (g Gist) Filenames() []string {
	names := make([]string, 0, len(g.Files))
	for _, f := range g.Files {
		names = append(names, f.Filename)
	}
	return names
}

// File looks up a file by its (encoded) name.
func (g Gist) File(filename string) (File, bool) {
	for _, f := range g.Files {
		if f.Filename == filename {
			return f, true
		}
	}
	return File{}, false
}

// Title is the human readable name of a gist: its description, or the name
// of its first file when the description is empty.
func (g Gist) Title() string {
	if g.Description != "" {
		return g.Description
	}
	if len(g.Files) > 0 {
		return DecodeDirectoryName(g.Files[0].Filename)
	}
	return g.ID
}

// Extension returns the text from the last dot of the file name, dot
// included. Casing is preserved.
func Extension(filename string) string {
	return path.Ext(filename)
}

// NewFile is a file submitted with a create request.
type NewFile struct {
	Filename string
	Content  string
}

type CreateRequest struct {
	Files       []NewFile
	Public      bool
	Description string
	Notebook    bool
}

//go:generate mockgen -destination=mocks/store_mock.go -package=mocks . Store
type Store interface {
	ListGists(ctx context.Context) ([]Gist, error)
	GetGist(ctx context.Context, id string) (*Gist, error)
	CreateGist(ctx context.Context, req CreateRequest) (*Gist, error)
	ReadFile(ctx context.Context, uri URI) ([]byte, error)
	WriteFile(ctx context.Context, uri URI, content []byte) error
	DeleteGist(ctx context.Context, id string) error
}
