package gist

import (
	"errors"
	"fmt"
	"strings"
)

const (
	Scheme = "gist"

	// EncodedDirectorySeparator replaces "/" in file names, gists are flat.
	EncodedDirectorySeparator = "___"
)

// URI addresses a single file of a gist.
type URI struct {
	GistID   string
	Filename string
}

func NewURI(gistID, filename string) URI {
	return URI{GistID: gistID, Filename: filename}
}

func (u URI) String() string {
	return fmt.Sprintf("%s://%s/%s", Scheme, u.GistID, u.Filename)
}

// ParseURI accepts "gist://<id>/<name>" as well as the short "<id>/<name>"
// form. A name containing "/" is encoded, so both the encoded and the
// display form of a nested file address the same gist file.
func ParseURI(raw string) (URI, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, Scheme+"://")

	gistID, filename, ok := strings.Cut(raw, "/")
	if !ok || gistID == "" || filename == "" {
		return URI{}, fmt.Errorf("invalid gist file reference %q: expected <gist-id>/<filename>", raw)
	}

	return URI{GistID: gistID, Filename: EncodeDirectoryName(filename)}, nil
}

var ErrEmptyGistID = errors.New("gist id cannot be empty")

// ParseGistRef splits "<id>" or "<id>/<name>" and returns an empty filename
// when none was given.
func ParseGistRef(raw string) (string, string, error) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), Scheme+"://")
	gistID, filename, _ := strings.Cut(raw, "/")
	if gistID == "" {
		return "", "", ErrEmptyGistID
	}
	return gistID, EncodeDirectoryName(filename), nil
}

func EncodeDirectoryName(filename string) string {
	return strings.ReplaceAll(filename, "/", EncodedDirectorySeparator)
}

func DecodeDirectoryName(filename string) string {
	return strings.ReplaceAll(filename, EncodedDirectorySeparator, "/")
}
