package pipeline

import "regexp"

// Precompiled inline patterns. Delimited spans are non-greedy and never
// cross a newline, so two spans on one line resolve independently.
var (
	// List item: 3-4 spaces, '*' or '#', space, rest of the line. Not
	// anchored, so items prefixed by an inserted <ul>/<ol> tag still match.
	listItemPattern = regexp.MustCompile(` {3,4}[*#] (.+)`)

	boldItalicPattern = regexp.MustCompile(`\*{3}(.+?)\*{3}`)
	boldPattern       = regexp.MustCompile(`\*{2}(.+?)\*{2}`)
	italicPattern     = regexp.MustCompile(`\*(.+?)\*`)
	strikePattern     = regexp.MustCompile(`~{2}(.+?)~{2}`)
	monospacePattern  = regexp.MustCompile("`(.+?)`")
	linkPattern       = regexp.MustCompile(`\[(.+?)\]\((.+?)\)`)

	// Non-empty line followed by a newline.
	lineBreakPattern = regexp.MustCompile(`(.+)\n`)

	emDashPattern = regexp.MustCompile(`-{3}(.+?)-{3}`)
)

func tagListItems(text string) string {
	return listItemPattern.ReplaceAllString(text, "<li>${1}</li>")
}

// rewriteBoldItalic emits </strong></em> in opening order. Consumers match
// on that exact markup.
func rewriteBoldItalic(text string) string {
	return boldItalicPattern.ReplaceAllString(text, "<strong><em>${1}</strong></em>")
}

func rewriteBold(text string) string {
	return boldPattern.ReplaceAllString(text, "<strong>${1}</strong>")
}

func rewriteItalic(text string) string {
	return italicPattern.ReplaceAllString(text, "<em>${1}</em>")
}

func rewriteStrikethrough(text string) string {
	return strikePattern.ReplaceAllString(text, "<s>${1}</s>")
}

func rewriteMonospace(text string) string {
	return monospacePattern.ReplaceAllString(text, "<code>${1}</code>")
}

// rewriteLinks turns [label](url) into an anchor. The URL was escaped by
// the first stage, so it cannot close the href attribute.
func rewriteLinks(text string) string {
	return linkPattern.ReplaceAllString(text, `<a href="${2}">${1}</a>`)
}

// insertLineBreaks replaces the newline ending every non-empty line with
// <br>. Newlines of blank lines stay, and a final line without a newline is
// left alone. Em-dash runs split across lines join up afterwards.
func insertLineBreaks(text string) string {
	return lineBreakPattern.ReplaceAllString(text, "${1}<br>")
}

func rewriteEmDashes(text string) string {
	return emDashPattern.ReplaceAllString(text, "&mdash;${1}&mdash;")
}
