package terminal

import "github.com/charmbracelet/lipgloss"

func symbol(s string, color lipgloss.Color, bold bool) string {
	style := lipgloss.NewStyle().Bold(bold).SetString(s)
	if color != "" {
		style = style.Foreground(color)
	}
	return style.String()
}

// Prefixes for prompts, status lines and error hints.
var (
	InfoSymbol     = symbol("ⓘ", "33", true)
	WarningSymbol  = symbol("⚠️", "", false)
	ErrorSymbol    = symbol("❌", "", false)
	SuccessSymbol  = symbol("✔", "10", true)
	QuestionSymbol = symbol("?", "39", true)
	LinkSymbol     = symbol("→", "75", false)
)

var (
	boldStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func Bold(s string) string {
	return boldStyle.Render(s)
}

// Faint dims secondary text such as item descriptions.
func Faint(s string) string {
	return faintStyle.Render(s)
}
