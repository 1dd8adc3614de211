package terminal

import (
	"io"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/glamour"
)

var (
	leadingWhitespace  = regexp.MustCompile(`^(?:\x1b\[[0-9;]*m|\s)*`)
	trailingWhitespace = regexp.MustCompile(`(?:\x1b\[[0-9;]*m|\s)*$`)
)

// RenderMarkdown renders content for a terminal of the given width. Leading
// and trailing padding added by the renderer is removed.
func RenderMarkdown(content string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"), // avoid OSC background queries
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	out, err := renderer.Render(content)
	if err != nil {
		return "", err
	}

	out = leadingWhitespace.ReplaceAllString(out, "")
	return trailingWhitespace.ReplaceAllString(out, "") + "\n", nil
}

// Highlight writes source with terminal syntax highlighting chosen by
// filename.
func Highlight(w io.Writer, filename, source string) error {
	return quick.Highlight(w, source, filename, "terminal256", "monokai")
}

func IsMarkdown(filename string) bool {
	lower := strings.ToLower(strings.TrimSuffix(filename, "_"))
	return strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".markdown")
}
