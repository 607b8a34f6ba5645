// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Suggest the first user-level path; local paths have no directory part
	for _, p := range searchedPaths {
		if filepath.Dir(p) != "." {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForNoInput returns hints when no markdown source was given on a terminal.
func ForNoInput() string {
	return format("pass a file or directory, or pipe markdown on stdin (use - to read stdin explicitly)")
}

// ForInputTooLarge returns hints for inputs rejected by the size limit.
func ForInputTooLarge(limit int) string {
	return format(fmt.Sprintf("limit is %d bytes; raise it with --max-bytes, or 0 to disable", limit))
}

// ForInvalidEngine returns hints listing the accepted engine names.
func ForInvalidEngine(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForUnknownStyle returns hints for highlight styles chroma does not know.
func ForUnknownStyle() string {
	return format(`list styles with "md2html styles", or pass --highlight-style "" to disable`)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInvalidExtension returns hints for input files that are not markdown.
func ForInvalidExtension(extensions []string) string {
	var hints []string
	if len(extensions) > 0 {
		hints = append(hints, "expected "+strings.Join(extensions, " or "))
	}
	hints = append(hints, "pipe other files on stdin to convert them anyway")
	return formatHints(hints)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
