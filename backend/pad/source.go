package pad

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/furisto/gistpad/backend/gist"
	"github.com/spf13/afero"
)

// Source is where content to add comes from. It is one of ExplorerSource,
// TabSource, GistTreeSource, NotebookSource or BufferSource.
type Source interface {
	source()
}

// ExplorerSource is a file or a directory picked from the file tree.
type ExplorerSource struct {
	Path string
}

// TabSource is an open document, optionally narrowed to a line selection.
type TabSource struct {
	Path     string
	Lines    *LineRange
	Filename string
}

// GistTreeSource is a file of another gist.
type GistTreeSource struct {
	GistID   string
	Filename string
}

type NotebookSource struct {
	Path string
}

// BufferSource is unsaved text. An empty Name is asked for later.
type BufferSource struct {
	Name string
	Text string
}

func (ExplorerSource) source() {}
func (TabSource) source()      {}
func (GistTreeSource) source() {}
func (NotebookSource) source() {}
func (BufferSource) source()   {}

// LineRange is a 1-based inclusive range of lines. End 0 runs to the end of
// the document.
type LineRange struct {
	Start int
	End   int
}

// ParseLineRange parses "A:B", "A:" or "A".
func ParseLineRange(raw string) (*LineRange, error) {
	startRaw, endRaw, hasEnd := strings.Cut(strings.TrimSpace(raw), ":")

	start, err := strconv.Atoi(startRaw)
	if err != nil || start < 1 {
		return nil, fmt.Errorf("invalid line range %q: start must be a positive number", raw)
	}

	end := start
	if hasEnd {
		end = 0
		if endRaw != "" {
			end, err = strconv.Atoi(endRaw)
			if err != nil || end < start {
				return nil, fmt.Errorf("invalid line range %q: end must be a number not below start", raw)
			}
		}
	}

	return &LineRange{Start: start, End: end}, nil
}

// Select returns the lines of content covered by the range, line endings
// included.
func (r LineRange) Select(content string) (string, error) {
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	if r.Start > len(lines) {
		return "", fmt.Errorf("line %d is beyond the end of the document (%d lines)", r.Start, len(lines))
	}

	end := r.End
	if end == 0 || end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[r.Start-1:end], ""), nil
}

// Normalizer turns sources into candidate files.
type Normalizer struct {
	fs     afero.Fs
	store  gist.Store
	ignore []string
}

func NewNormalizer(fs afero.Fs, store gist.Store, ignore []string) *Normalizer {
	return &Normalizer{
		fs:     fs,
		store:  store,
		ignore: ignore,
	}
}

func (n *Normalizer) Normalize(ctx context.Context, sources ...Source) ([]CandidateFile, error) {
	var files []CandidateFile
	for _, src := range sources {
		normalized, err := n.normalize(ctx, src)
		if err != nil {
			return nil, err
		}
		files = append(files, normalized...)
	}
	return files, nil
}

func (n *Normalizer) normalize(ctx context.Context, src Source) ([]CandidateFile, error) {
	switch src := src.(type) {
	case ExplorerSource:
		return n.explorer(src)
	case TabSource:
		return n.tab(src)
	case GistTreeSource:
		return n.gistTree(ctx, src)
	case NotebookSource:
		return n.notebook(src)
	case BufferSource:
		return []CandidateFile{{Filename: gist.EncodeDirectoryName(src.Name), Content: src.Text}}, nil
	default:
		return nil, fmt.Errorf("unsupported source %T", src)
	}
}

func (n *Normalizer) explorer(src ExplorerSource) ([]CandidateFile, error) {
	info, err := n.fs.Stat(src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", src.Path, err)
	}

	if !info.IsDir() {
		content, err := afero.ReadFile(n.fs, src.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", src.Path, err)
		}
		return []CandidateFile{{Filename: filepath.Base(src.Path), Content: string(content)}}, nil
	}

	var files []CandidateFile
	err = afero.Walk(n.fs, src.Path, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src.Path, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if n.ignored(rel) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}

		content, err := afero.ReadFile(n.fs, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		files = append(files, CandidateFile{Filename: gist.EncodeDirectoryName(rel), Content: string(content)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func (n *Normalizer) ignored(rel string) bool {
	for _, pattern := range n.ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func (n *Normalizer) tab(src TabSource) ([]CandidateFile, error) {
	content, err := afero.ReadFile(n.fs, src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", src.Path, err)
	}

	text := string(content)
	if src.Lines != nil {
		text, err = src.Lines.Select(text)
		if err != nil {
			return nil, fmt.Errorf("invalid selection in %s: %w", src.Path, err)
		}
	}

	filename := src.Filename
	if filename == "" {
		filename = filepath.Base(src.Path)
	}
	return []CandidateFile{{Filename: gist.EncodeDirectoryName(filename), Content: text}}, nil
}

func (n *Normalizer) gistTree(ctx context.Context, src GistTreeSource) ([]CandidateFile, error) {
	content, err := n.store.ReadFile(ctx, gist.NewURI(src.GistID, src.Filename))
	if err != nil {
		return nil, err
	}
	return []CandidateFile{{Filename: src.Filename, Content: string(content)}}, nil
}

func (n *Normalizer) notebook(src NotebookSource) ([]CandidateFile, error) {
	content, err := afero.ReadFile(n.fs, src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read notebook %s: %w", src.Path, err)
	}
	if !json.Valid(content) {
		return nil, fmt.Errorf("notebook %s is not valid JSON", src.Path)
	}
	return []CandidateFile{{Filename: filepath.Base(src.Path), Content: string(content)}}, nil
}
