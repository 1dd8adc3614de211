// Package pad holds the routing decisions between local content and gists:
// where a batch of files is written to and which gist file is pasted.
package pad

import (
	"context"
	"errors"
)

// ErrCancelled is returned by a UI when the user dismisses a prompt or a
// selection list. Callers in this package treat it as a silent stop.
var ErrCancelled = errors.New("cancelled by user")

// UI is the set of interaction primitives the routing logic depends on.
type UI interface {
	// PromptText asks for a line of free text. With required set an empty
	// answer is not accepted.
	PromptText(ctx context.Context, prompt string, required bool) (string, error)

	// SelectOne presents items and returns the index of the accepted one.
	SelectOne(ctx context.Context, title string, items []Item) (int, error)

	// WithProgress runs task while reporting label to the user and waits for
	// it to finish.
	WithProgress(ctx context.Context, label string, task func(ctx context.Context) error) error
}

func isCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
