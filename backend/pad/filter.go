package pad

import (
	"context"
	"fmt"
	"slices"

	"github.com/furisto/gistpad/backend/gist"
)

// LanguageMap maps a language id to the file extensions shown for it.
type LanguageMap map[string][]string

// OptOutSuffix appended to an extension keeps a file out of the native
// rendering of that extension while it still counts as the same type.
const OptOutSuffix = "_"

// AllowedExtensions returns the extensions that count as language. A nil
// result disables filtering: the language has no mapping. The configured
// slice is never modified.
func AllowedExtensions(languages LanguageMap, language string) []string {
	configured, ok := languages[language]
	if !ok {
		return nil
	}

	allowed := make([]string, 0, 2*len(configured))
	for _, ext := range configured {
		allowed = append(allowed, ext, ext+OptOutSuffix)
	}
	return allowed
}

// MatchesExtensions reports whether g has a file with one of the allowed
// extensions. A nil allow list matches every gist.
func MatchesExtensions(g gist.Gist, allowed []string) bool {
	if allowed == nil {
		return true
	}

	for _, f := range g.Files {
		if slices.Contains(allowed, gist.Extension(f.Filename)) {
			return true
		}
	}
	return false
}

func FilterGists(gists []gist.Gist, allowed []string) []gist.Gist {
	filtered := make([]gist.Gist, 0, len(gists))
	for _, g := range gists {
		if MatchesExtensions(g, allowed) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// Inserter receives pasted text, e.g. at the cursor of a document.
type Inserter interface {
	Insert(ctx context.Context, text string) error
}

type FileFilter struct {
	store gist.Store
	ui    UI
}

func NewFileFilter(store gist.Store, ui UI) *FileFilter {
	return &FileFilter{
		store: store,
		ui:    ui,
	}
}

// Resolve narrows snapshot to the gists relevant for language and lets the
// user pick one file. A nil URI with a nil error means the user cancelled.
func (f *FileFilter) Resolve(ctx context.Context, language string, snapshot []gist.Gist, languages LanguageMap) (*gist.URI, error) {
	candidates := FilterGists(snapshot, AllowedExtensions(languages, language))

	items := GistItems(candidates)
	selected, err := f.ui.SelectOne(ctx, "Select gist to paste from", items)
	if err != nil {
		if isCancelled(err) {
			return nil, nil
		}
		return nil, err
	}
	if selected < 0 || selected >= len(candidates) {
		return nil, fmt.Errorf("selection %d out of range", selected)
	}

	return f.ResolveFile(ctx, candidates[selected])
}

// ResolveFile picks a file of g, asking only when there is more than one.
func (f *FileFilter) ResolveFile(ctx context.Context, g gist.Gist) (*gist.URI, error) {
	switch len(g.Files) {
	case 0:
		return nil, fmt.Errorf("gist %s has no files", g.ID)
	case 1:
		uri := gist.NewURI(g.ID, g.Files[0].Filename)
		return &uri, nil
	}

	items := FileItems(g)
	selected, err := f.ui.SelectOne(ctx, "Select file to paste", items)
	if err != nil {
		if isCancelled(err) {
			return nil, nil
		}
		return nil, err
	}
	if selected < 0 || selected >= len(items) {
		return nil, fmt.Errorf("selection %d out of range", selected)
	}

	uri := items[selected].Choice.(ExistingFile).URI
	return &uri, nil
}

// Paste resolves a gist file and hands its text to inserter. The content is
// inserted as is, binary files are not detected.
func (f *FileFilter) Paste(ctx context.Context, language string, snapshot []gist.Gist, languages LanguageMap, inserter Inserter) (*gist.URI, error) {
	uri, err := f.Resolve(ctx, language, snapshot, languages)
	if err != nil || uri == nil {
		return nil, err
	}

	content, err := f.store.ReadFile(ctx, *uri)
	if err != nil {
		return nil, err
	}

	if err := inserter.Insert(ctx, string(content)); err != nil {
		return nil, fmt.Errorf("failed to insert %s: %w", gist.DecodeDirectoryName(uri.Filename), err)
	}
	return uri, nil
}
