package pad

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

const PlainText = "plaintext"

// editor language ids that differ from the lowercased lexer name
var languageAliases = map[string]string{
	"bash":            "shellscript",
	"c#":              "csharp",
	"c++":             "cpp",
	"docker":          "dockerfile",
	"emacslisp":       "lisp",
	"jsx":             "javascriptreact",
	"plain text":      PlainText,
	"plaintext":       PlainText,
	"protocol buffer": "proto",
	"tsx":             "typescriptreact",
}

// DetectLanguage derives the language id of a document from its file name.
func DetectLanguage(filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return PlainText
	}

	name := strings.ToLower(lexer.Config().Name)
	if alias, ok := languageAliases[name]; ok {
		return alias
	}
	return strings.ReplaceAll(name, " ", "")
}
