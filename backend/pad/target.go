package pad

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/furisto/gistpad/backend/gist"
	"golang.org/x/sync/errgroup"
)

const defaultWriteConcurrency = 8

// CandidateFile is a piece of local content on its way to a gist.
type CandidateFile struct {
	Filename string
	Content  string
}

// Dispatch records what was sent to the store after a completed selection.
type Dispatch struct {
	Choice  Choice
	Created *gist.Gist
	Written []gist.URI
}

// FileFailure is a single failed write of an append batch.
type FileFailure struct {
	URI gist.URI
	Err error
}

// AppendError reports a batch where at least one write failed. Writes that
// succeeded are not rolled back.
type AppendError struct {
	GistID  string
	Written []gist.URI
	Failed  []FileFailure
}

func (e *AppendError) Error() string {
	names := make([]string, 0, len(e.Failed))
	for _, f := range e.Failed {
		names = append(names, gist.DecodeDirectoryName(f.URI.Filename))
	}
	return fmt.Sprintf("failed to write %d of %d files to gist %s (%s): %v",
		len(e.Failed), len(e.Failed)+len(e.Written), e.GistID, strings.Join(names, ", "), errors.Join(e.Unwrap()...))
}

func (e *AppendError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, f := range e.Failed {
		errs = append(errs, f.Err)
	}
	return errs
}

type TargetResolver struct {
	store       gist.Store
	ui          UI
	concurrency int
}

type TargetResolverOption func(*TargetResolver)

// WithWriteConcurrency bounds the number of writes in flight when
// appending to an existing gist.
func WithWriteConcurrency(n int) TargetResolverOption {
	return func(r *TargetResolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

func NewTargetResolver(store gist.Store, ui UI, options ...TargetResolverOption) *TargetResolver {
	resolver := &TargetResolver{
		store:       store,
		ui:          ui,
		concurrency: defaultWriteConcurrency,
	}
	for _, option := range options {
		option(resolver)
	}
	return resolver
}

// Resolve asks the user where files go and dispatches them. snapshot is the
// gist listing the choice is made from. A nil Dispatch with a nil error
// means the user cancelled and nothing was sent.
func (r *TargetResolver) Resolve(ctx context.Context, files []CandidateFile, snapshot []gist.Gist) (*Dispatch, error) {
	items := TargetItems(snapshot)

	selected, err := r.ui.SelectOne(ctx, "Add to gist", items)
	if err != nil {
		if isCancelled(err) {
			return nil, nil
		}
		return nil, err
	}
	if selected < 0 || selected >= len(items) {
		return nil, fmt.Errorf("selection %d out of range", selected)
	}

	files, err = r.nameFiles(ctx, files)
	if err != nil {
		if isCancelled(err) {
			return nil, nil
		}
		return nil, err
	}

	switch choice := items[selected].Choice.(type) {
	case CreateNew:
		return r.create(ctx, choice, files)
	case ExistingGist:
		return r.append(ctx, choice, files)
	default:
		return nil, fmt.Errorf("unsupported choice %T", choice)
	}
}

func (r *TargetResolver) create(ctx context.Context, choice CreateNew, files []CandidateFile) (*Dispatch, error) {
	description, err := r.ui.PromptText(ctx, "Gist description (optional)", false)
	if err != nil {
		if !isCancelled(err) {
			return nil, err
		}
		description = ""
	}

	req := gist.CreateRequest{
		Files:       make([]gist.NewFile, 0, len(files)),
		Public:      choice.Public,
		Description: strings.TrimSpace(description),
		Notebook:    false,
	}
	for _, f := range files {
		req.Files = append(req.Files, gist.NewFile{Filename: f.Filename, Content: f.Content})
	}

	var created *gist.Gist
	err = r.ui.WithProgress(ctx, "Creating gist", func(ctx context.Context) error {
		var err error
		created, err = r.store.CreateGist(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Dispatch{Choice: choice, Created: created}, nil
}

func (r *TargetResolver) append(ctx context.Context, choice ExistingGist, files []CandidateFile) (*Dispatch, error) {
	uris := make([]gist.URI, len(files))
	errs := make([]error, len(files))

	label := fmt.Sprintf("Adding %d %s to gist", len(files), plural(len(files), "file", "files"))
	progressErr := r.ui.WithProgress(ctx, label, func(ctx context.Context) error {
		// writes are independent, one failure must not cancel the others
		group := new(errgroup.Group)
		group.SetLimit(r.concurrency)

		for i, f := range files {
			uris[i] = gist.NewURI(choice.ID, f.Filename)
			group.Go(func() error {
				errs[i] = r.store.WriteFile(ctx, uris[i], []byte(f.Content))
				return errs[i]
			})
		}

		return group.Wait()
	})

	dispatch := &Dispatch{Choice: choice}
	var failed []FileFailure
	for i, uri := range uris {
		if errs[i] != nil {
			failed = append(failed, FileFailure{URI: uri, Err: errs[i]})
			continue
		}
		dispatch.Written = append(dispatch.Written, uri)
	}

	if len(failed) > 0 {
		return nil, &AppendError{GistID: choice.ID, Written: dispatch.Written, Failed: failed}
	}
	if progressErr != nil {
		return nil, progressErr
	}
	return dispatch, nil
}

// nameFiles asks for a name for every file that has none, such as text
// piped from an unsaved buffer.
func (r *TargetResolver) nameFiles(ctx context.Context, files []CandidateFile) ([]CandidateFile, error) {
	named := make([]CandidateFile, len(files))
	for i, f := range files {
		named[i] = f
		if strings.TrimSpace(f.Filename) != "" {
			continue
		}

		name, err := r.ui.PromptText(ctx, "File name", true)
		if err != nil {
			return nil, err
		}
		named[i].Filename = gist.EncodeDirectoryName(strings.TrimSpace(name))
	}
	return named, nil
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
