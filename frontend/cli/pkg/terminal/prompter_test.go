package terminal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/furisto/gistpad/backend/pad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var items = []pad.Item{
	{Label: pad.CreatePublicLabel, Choice: pad.CreateNew{Public: true}},
	{Label: pad.CreateSecretLabel, Choice: pad.CreateNew{Public: false}},
	{Label: "python snippets", Description: "1 file, public", Choice: pad.ExistingGist{ID: "g1"}},
}

func TestPrompter_SelectNumbered(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader("7\n3\n"), &out)

	idx, err := prompter.SelectOne(context.Background(), "Add to gist", items)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	assert.Equal(t, "? Add to gist\n"+
		"  1) Create new public gist\n"+
		"  2) Create new secret gist\n"+
		"  3) python snippets (1 file, public)\n"+
		"Enter a number (empty to cancel): "+
		"⚠️ \"7\" is not a number between 1 and 3\n"+
		"Enter a number (empty to cancel): ", out.String())
}

func TestPrompter_SelectCancelled(t *testing.T) {
	for name, input := range map[string]string{
		"empty line":   "\n",
		"end of input": "",
	} {
		t.Run(name, func(t *testing.T) {
			prompter := NewPrompter(strings.NewReader(input), &bytes.Buffer{})

			_, err := prompter.SelectOne(context.Background(), "Add to gist", items)
			assert.ErrorIs(t, err, pad.ErrCancelled)
		})
	}
}

func TestPrompter_SelectWithPicks(t *testing.T) {
	prompter := NewPrompter(strings.NewReader(""), &bytes.Buffer{}, WithPicks("create new SECRET gist", "pysnip", "nothing-like-this"))

	idx, err := prompter.SelectOne(context.Background(), "Add to gist", items)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = prompter.SelectOne(context.Background(), "Add to gist", items)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	_, err = prompter.SelectOne(context.Background(), "Add to gist", items)
	assert.ErrorContains(t, err, `no option of "Add to gist" matches "nothing-like-this"`)
}

func TestPrompter_PromptText(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader("\n  hello.py \n"), &out)

	name, err := prompter.PromptText(context.Background(), "File name", true)
	require.NoError(t, err)
	assert.Equal(t, "hello.py", name)
	assert.Equal(t, "? File name: ⚠️ a value is required\n? File name: ", out.String())

	_, err = prompter.PromptText(context.Background(), "Gist description (optional)", false)
	assert.ErrorIs(t, err, pad.ErrCancelled)
}

func TestPrompter_PromptTextOptionalAcceptsEmpty(t *testing.T) {
	prompter := NewPrompter(strings.NewReader("\n"), &bytes.Buffer{})

	description, err := prompter.PromptText(context.Background(), "Gist description (optional)", false)
	require.NoError(t, err)
	assert.Empty(t, description)
}

func TestPrompter_WithProgress(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader(""), &bytes.Buffer{}, WithProgressWriter(&out))

	err := prompter.WithProgress(context.Background(), "Creating gist", func(ctx context.Context) error {
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "\r\x1b[K✔ Creating gist\n", out.String())

	out.Reset()
	taskErr := errors.New("boom")
	err = prompter.WithProgress(context.Background(), "Creating gist", func(ctx context.Context) error {
		return taskErr
	})
	assert.ErrorIs(t, err, taskErr)
	assert.Equal(t, "\r\x1b[K❌ Creating gist\n", out.String())
}

func TestIsMarkdown(t *testing.T) {
	assert.True(t, IsMarkdown("README.md"))
	assert.True(t, IsMarkdown("notes.MD_"))
	assert.False(t, IsMarkdown("main.go"))
}
