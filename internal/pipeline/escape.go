package pipeline

import "strings"

// htmlEscaper replaces the four HTML-significant characters in a single
// pass, which gives the same result as escaping '&' before the others.
// The quote entity has no trailing semicolon; existing output depends on it.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot",
)

// escapeHTML escapes literal markup characters before any rewrite runs.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
