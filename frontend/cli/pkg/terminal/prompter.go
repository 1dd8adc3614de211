package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/furisto/gistpad/backend/pad"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/sahilm/fuzzy"
	"golang.org/x/term"
)

// Prompter answers selection and text prompts from scripted picks, an
// interactive fuzzy finder or a numbered list read line by line.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	progress    io.Writer
	interactive bool

	mu    sync.Mutex
	picks []string
}

type PrompterOption func(*Prompter)

// WithPicks answers selections with the given fuzzy queries, in order.
func WithPicks(picks ...string) PrompterOption {
	return func(p *Prompter) {
		p.picks = append(p.picks, picks...)
	}
}

func WithInteractive(interactive bool) PrompterOption {
	return func(p *Prompter) {
		p.interactive = interactive
	}
}

func WithProgressWriter(w io.Writer) PrompterOption {
	return func(p *Prompter) {
		p.progress = w
	}
}

func NewPrompter(in io.Reader, out io.Writer, options ...PrompterOption) *Prompter {
	p := &Prompter{
		in:       bufio.NewReader(in),
		out:      out,
		progress: out,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// IsInteractive reports whether both streams are attached to a terminal.
func IsInteractive(in io.Reader, out io.Writer) bool {
	inFile, ok := in.(*os.File)
	if !ok {
		return false
	}
	outFile, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(inFile.Fd())) && term.IsTerminal(int(outFile.Fd()))
}

func (p *Prompter) PromptText(ctx context.Context, prompt string, required bool) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		fmt.Fprintf(p.out, "%s %s: ", QuestionSymbol, prompt)
		line, err := p.readLine()
		if err != nil {
			fmt.Fprintln(p.out)
			return "", err
		}

		if line != "" || !required {
			return line, nil
		}
		fmt.Fprintf(p.out, "%s a value is required\n", WarningSymbol)
	}
}

func (p *Prompter) SelectOne(ctx context.Context, title string, items []pad.Item) (int, error) {
	if query, ok := p.nextPick(); ok {
		return matchPick(title, query, items)
	}

	if p.interactive {
		return p.selectFuzzy(ctx, title, items)
	}
	return p.selectNumbered(ctx, title, items)
}

func (p *Prompter) WithProgress(ctx context.Context, label string, task func(context.Context) error) error {
	return Spin(ctx, p.progress, label, task)
}

func (p *Prompter) nextPick() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.picks) == 0 {
		return "", false
	}
	pick := p.picks[0]
	p.picks = p.picks[1:]
	return pick, true
}

func (p *Prompter) selectFuzzy(ctx context.Context, title string, items []pad.Item) (int, error) {
	idx, err := fuzzyfinder.Find(
		items,
		func(i int) string {
			return items[i].Label
		},
		fuzzyfinder.WithPromptString(title+"> "),
		fuzzyfinder.WithContext(ctx),
		fuzzyfinder.WithPreviewWindow(func(i, width, height int) string {
			if i < 0 {
				return ""
			}
			return items[i].Description
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return 0, pad.ErrCancelled
		}
		return 0, fmt.Errorf("select %s: %w", strings.ToLower(title), err)
	}
	return idx, nil
}

func (p *Prompter) selectNumbered(ctx context.Context, title string, items []pad.Item) (int, error) {
	fmt.Fprintf(p.out, "%s %s\n", QuestionSymbol, Bold(title))
	for i, item := range items {
		if item.Description != "" {
			fmt.Fprintf(p.out, "  %d) %s %s\n", i+1, item.Label, Faint("("+item.Description+")"))
		} else {
			fmt.Fprintf(p.out, "  %d) %s\n", i+1, item.Label)
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		fmt.Fprint(p.out, "Enter a number (empty to cancel): ")
		line, err := p.readLine()
		if err != nil {
			fmt.Fprintln(p.out)
			return 0, err
		}
		if line == "" {
			return 0, pad.ErrCancelled
		}

		choice, err := strconv.Atoi(line)
		if err == nil && choice >= 1 && choice <= len(items) {
			return choice - 1, nil
		}
		fmt.Fprintf(p.out, "%s %q is not a number between 1 and %d\n", WarningSymbol, line, len(items))
	}
}

// readLine returns one trimmed line. End of input cancels the prompt.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line == "" {
			return "", pad.ErrCancelled
		}
		if !errors.Is(err, io.EOF) {
			return "", err
		}
	}
	return strings.TrimSpace(line), nil
}

type itemLabels []pad.Item

func (l itemLabels) String(i int) string {
	return l[i].Label
}

func (l itemLabels) Len() int {
	return len(l)
}

// matchPick selects the item whose label equals query, ignoring case, or
// otherwise the best fuzzy match.
func matchPick(title, query string, items []pad.Item) (int, error) {
	for i, item := range items {
		if strings.EqualFold(item.Label, query) {
			return i, nil
		}
	}

	matches := fuzzy.FindFrom(query, itemLabels(items))
	if len(matches) == 0 {
		return 0, fmt.Errorf("no option of %q matches %q", title, query)
	}
	return matches[0].Index, nil
}

var _ pad.UI = (*Prompter)(nil)
