package pad

import (
	"fmt"

	"github.com/furisto/gistpad/backend/gist"
)

// Choice is what a selection item stands for: CreateNew or ExistingGist.
type Choice interface {
	choice()
}

// CreateNew is the sentinel choice for creating a gist.
type CreateNew struct {
	Public bool
}

// ExistingGist targets a gist that is already in the store.
type ExistingGist struct {
	ID string
}

// ExistingFile targets a single file of a gist.
type ExistingFile struct {
	URI gist.URI
}

func (CreateNew) choice()    {}
func (ExistingGist) choice() {}
func (ExistingFile) choice() {}

// Item is a row of a selection list.
type Item struct {
	Label       string
	Description string
	Choice      Choice
}

const (
	CreatePublicLabel = "Create new public gist"
	CreateSecretLabel = "Create new secret gist"
)

// TargetItems returns the two create sentinels, public first, followed by
// one item per gist in store order.
func TargetItems(gists []gist.Gist) []Item {
	items := make([]Item, 0, len(gists)+2)
	items = append(items,
		Item{Label: CreatePublicLabel, Choice: CreateNew{Public: true}},
		Item{Label: CreateSecretLabel, Choice: CreateNew{Public: false}},
	)
	return append(items, GistItems(gists)...)
}

func GistItems(gists []gist.Gist) []Item {
	items := make([]Item, 0, len(gists))
	for _, g := range gists {
		items = append(items, Item{
			Label:       g.Title(),
			Description: describeGist(g),
			Choice:      ExistingGist{ID: g.ID},
		})
	}
	return items
}

// FileItems lists the files of a gist by their decoded display names.
func FileItems(g gist.Gist) []Item {
	items := make([]Item, 0, len(g.Files))
	for _, f := range g.Files {
		items = append(items, Item{
			Label:  gist.DecodeDirectoryName(f.Filename),
			Choice: ExistingFile{URI: gist.NewURI(g.ID, f.Filename)},
		})
	}
	return items
}

func describeGist(g gist.Gist) string {
	visibility := "secret"
	if g.Public {
		visibility = "public"
	}

	files := "files"
	if len(g.Files) == 1 {
		files = "file"
	}

	return fmt.Sprintf("%d %s, %s", len(g.Files), files, visibility)
}
