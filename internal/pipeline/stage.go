package pipeline

// stage is one rewrite pass of the snippet engine.
type stage struct {
	name  string
	apply func(string) string
}

// snippetStages is the fixed stage order. Escaping runs first so that no
// later stage sees a literal '<' or '&' from the input, headings and lists
// run before inline emphasis, and longer delimiters run before shorter ones.
var snippetStages = []stage{
	{"escape", escapeHTML},
	{"heading1", rewriteHeading1},
	{"heading2", rewriteHeading2},
	{"bullet-list", wrapBulletLists},
	{"ordered-list", wrapOrderedLists},
	{"list-item", tagListItems},
	{"bold-italic", rewriteBoldItalic},
	{"bold", rewriteBold},
	{"italic", rewriteItalic},
	{"strikethrough", rewriteStrikethrough},
	{"monospace", rewriteMonospace},
	{"link", rewriteLinks},
	{"line-break", insertLineBreaks},
	{"em-dash", rewriteEmDashes},
}

func runStages(text string, stages []stage) string {
	for _, s := range stages {
		text = s.apply(text)
	}
	return text
}

// RenderSnippet converts a Markdown snippet to an HTML fragment.
// It never fails: unrecognized syntax passes through escaped.
func RenderSnippet(raw string) string {
	return runStages(raw, snippetStages)
}
