package pad

import (
	"context"
	"errors"
	"testing"

	"github.com/furisto/gistpad/backend/gist"
	"github.com/furisto/gistpad/backend/gist/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func gistWith(id string, filenames ...string) gist.Gist {
	g := gist.Gist{ID: id, Description: id}
	for _, name := range filenames {
		g.Files = append(g.Files, gist.File{Filename: name})
	}
	return g
}

func TestAllowedExtensions(t *testing.T) {
	languages := LanguageMap{
		"python": {".py"},
		"empty":  {},
	}

	assert.Equal(t, []string{".py", ".py_"}, AllowedExtensions(languages, "python"))
	assert.Nil(t, AllowedExtensions(languages, "plaintext"))

	empty := AllowedExtensions(languages, "empty")
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestAllowedExtensions_DoesNotMutateConfiguration(t *testing.T) {
	configured := make([]string, 1, 8)
	configured[0] = ".py"
	languages := LanguageMap{"python": configured}

	first := AllowedExtensions(languages, "python")
	second := AllowedExtensions(languages, "python")

	assert.Equal(t, first, second)
	assert.Equal(t, []string{".py"}, languages["python"])
	assert.Equal(t, []string{".py"}, configured[:1])
	assert.Equal(t, ".py", configured[:2][0])
	assert.Equal(t, "", configured[:2][1], "backing array must not be written")
}

func TestFilterGists(t *testing.T) {
	gists := []gist.Gist{
		gistWith("opt-out", "notes.py_"),
		gistWith("text", "notes.txt"),
		gistWith("mixed", "README.md", "main.py"),
		gistWith("upper", "MAIN.PY"),
		gistWith("empty"),
	}
	languages := LanguageMap{"python": {".py"}}

	ids := func(gs []gist.Gist) []string {
		var out []string
		for _, g := range gs {
			out = append(out, g.ID)
		}
		return out
	}

	python := FilterGists(gists, AllowedExtensions(languages, "python"))
	assert.Equal(t, []string{"opt-out", "mixed"}, ids(python))

	again := FilterGists(gists, AllowedExtensions(languages, "python"))
	assert.Equal(t, ids(python), ids(again))

	plaintext := FilterGists(gists, AllowedExtensions(languages, "plaintext"))
	assert.Equal(t, []string{"opt-out", "text", "mixed", "upper", "empty"}, ids(plaintext))
}

type recordingInserter struct {
	text  string
	calls int
	err   error
}

func (r *recordingInserter) Insert(ctx context.Context, text string) error {
	r.calls++
	r.text = text
	return r.err
}

func TestFileFilter_SingleFileIsChosenWithoutPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	ui := &scriptedUI{selections: []int{0}}
	inserter := &recordingInserter{}

	gists := []gist.Gist{gistWith("txt", "a.txt"), gistWith("py", "hello.py")}
	store.EXPECT().ReadFile(gomock.Any(), gist.NewURI("py", "hello.py")).Return([]byte("print('hi')\n"), nil)

	uri, err := NewFileFilter(store, ui).Paste(context.Background(), "python", gists, LanguageMap{"python": {".py"}}, inserter)
	require.NoError(t, err)

	assert.Equal(t, gist.NewURI("py", "hello.py"), *uri)
	assert.Equal(t, "print('hi')\n", inserter.text)
	require.Len(t, ui.shown, 1)
	assert.Equal(t, []Item{{Label: "py", Description: "1 file, secret", Choice: ExistingGist{ID: "py"}}}, ui.shown[0])
}

func TestFileFilter_MultipleFilesPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	ui := &scriptedUI{selections: []int{0, 1}}
	inserter := &recordingInserter{}

	gists := []gist.Gist{gistWith("nested", "src___a.go", "src___b.go")}
	store.EXPECT().ReadFile(gomock.Any(), gist.NewURI("nested", "src___b.go")).Return([]byte("package b\n"), nil)

	uri, err := NewFileFilter(store, ui).Paste(context.Background(), "go", gists, LanguageMap{}, inserter)
	require.NoError(t, err)

	assert.Equal(t, "src___b.go", uri.Filename)
	require.Len(t, ui.shown, 2)
	assert.Equal(t, "src/a.go", ui.shown[1][0].Label)
	assert.Equal(t, "src/b.go", ui.shown[1][1].Label)
	assert.Equal(t, "package b\n", inserter.text)
}

func TestFileFilter_Cancellation(t *testing.T) {
	gists := []gist.Gist{gistWith("two", "a.md", "b.md")}

	for name, selections := range map[string][]int{
		"gist selection": {cancel},
		"file selection": {0, cancel},
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockStore(ctrl)
			ui := &scriptedUI{selections: selections}
			inserter := &recordingInserter{}

			uri, err := NewFileFilter(store, ui).Paste(context.Background(), "markdown", gists, nil, inserter)
			assert.NoError(t, err)
			assert.Nil(t, uri)
			assert.Zero(t, inserter.calls)
		})
	}
}

func TestFileFilter_ReadErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	ui := &scriptedUI{selections: []int{0}}
	inserter := &recordingInserter{}

	readErr := errors.New("connection reset")
	store.EXPECT().ReadFile(gomock.Any(), gomock.Any()).Return(nil, readErr)

	_, err := NewFileFilter(store, ui).Paste(context.Background(), "plaintext", []gist.Gist{gistWith("g", "a.txt")}, nil, inserter)
	assert.ErrorIs(t, err, readErr)
	assert.Zero(t, inserter.calls)
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, "python", DetectLanguage("main.py"))
	assert.Equal(t, "go", DetectLanguage("main.go"))
	assert.Equal(t, "markdown", DetectLanguage("README.md"))
	assert.Equal(t, PlainText, DetectLanguage("no-extension-here"))
}
