package pad

import (
	"context"
	"errors"
	"sync"
)

const cancel = -1

// scriptedUI answers selections and prompts from fixed scripts and records
// what it was shown.
type scriptedUI struct {
	mu sync.Mutex

	selections []int
	answers    []*string

	shown    [][]Item
	prompts  []string
	progress []string
}

func answer(s string) *string {
	return &s
}

func (u *scriptedUI) PromptText(ctx context.Context, prompt string, required bool) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.prompts = append(u.prompts, prompt)
	if len(u.answers) == 0 {
		return "", errors.New("unexpected prompt: " + prompt)
	}

	next := u.answers[0]
	u.answers = u.answers[1:]
	if next == nil {
		return "", ErrCancelled
	}
	return *next, nil
}

func (u *scriptedUI) SelectOne(ctx context.Context, title string, items []Item) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.shown = append(u.shown, items)
	if len(u.selections) == 0 {
		return 0, errors.New("unexpected selection: " + title)
	}

	next := u.selections[0]
	u.selections = u.selections[1:]
	if next == cancel {
		return 0, ErrCancelled
	}
	return next, nil
}

func (u *scriptedUI) WithProgress(ctx context.Context, label string, task func(ctx context.Context) error) error {
	u.mu.Lock()
	u.progress = append(u.progress, label)
	u.mu.Unlock()

	return task(ctx)
}
