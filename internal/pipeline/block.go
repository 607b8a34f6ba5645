package pipeline

import "strings"

// List item indentation bounds, in spaces.
const (
	minListIndent = 3
	maxListIndent = 4
)

func rewriteHeading1(text string) string {
	return rewriteHeadings(text, "#", "h4")
}

func rewriteHeading2(text string) string {
	return rewriteHeadings(text, "##", "h5")
}

// rewriteHeadings wraps a "<marker> text" line in <tag> when the next line is
// not empty. The next line is left as-is but belongs to the match, so it
// cannot open a heading of its own. A heading on the last line is never
// converted.
func rewriteHeadings(text, marker, tag string) string {
	lines := strings.Split(text, "\n")
	for i := 0; i+1 < len(lines); i++ {
		if !isHeadingLine(lines[i], marker) || lines[i+1] == "" {
			continue
		}
		lines[i] = "<" + tag + ">" + lines[i][len(marker)+1:] + "</" + tag + ">"
		i++
	}
	return strings.Join(lines, "\n")
}

// isHeadingLine reports whether line is exactly marker, a space and at least
// one more character. "## x" is not a "#" heading.
func isHeadingLine(line, marker string) bool {
	return len(line) > len(marker)+1 && strings.HasPrefix(line, marker+" ")
}

func wrapBulletLists(text string) string {
	return wrapListBlocks(text, '*', "<ul>", "</ul>")
}

func wrapOrderedLists(text string) string {
	return wrapListBlocks(text, '#', "<ol>", "</ol>")
}

// wrapListBlocks wraps each run of consecutive list lines in open/close tags.
// The run owns the newline that ends its last line, so the closing tag is
// placed at the start of the following line. Items stay untagged here.
func wrapListBlocks(text string, bullet byte, openTag, closeTag string) string {
	lines := strings.Split(text, "\n")
	last := len(lines) - 1

	for i := 0; i <= last; {
		if !isListLine(lines[i], bullet) {
			i++
			continue
		}

		end := i
		for end < last && isListLine(lines[end+1], bullet) {
			end++
		}

		lines[i] = openTag + lines[i]
		if end < last {
			lines[end+1] = closeTag + lines[end+1]
		} else {
			lines[end] += closeTag
		}
		i = end + 1
	}

	return strings.Join(lines, "\n")
}

// isListLine reports whether line starts with 3 or 4 spaces, the bullet, a
// space, and at least one more character.
func isListLine(line string, bullet byte) bool {
	indent := len(line) - len(strings.TrimLeft(line, " "))
	if indent < minListIndent || indent > maxListIndent {
		return false
	}
	rest := line[indent:]
	return len(rest) > 2 && rest[0] == bullet && rest[1] == ' '
}
