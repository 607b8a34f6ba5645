// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrFileTooLarge indicates a file exceeds the read limit.
var ErrFileTooLarge = errors.New("file exceeds size limit")

// MarkdownExtensions lists the extensions treated as Markdown input.
var MarkdownExtensions = []string{".md", ".markdown"}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "comments" -> false (name)
//   - "./comments.yaml" -> true (relative path)
//   - "/etc/md2html.yaml" -> true (absolute)
//   - "C:\config\md2html.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsMarkdownFile reports whether path has a Markdown extension,
// case-insensitively.
func IsMarkdownFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range MarkdownExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ReplaceExt swaps the extension of path for ext (which includes the dot).
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// ReadText reads r as text, honoring a UTF-8 or UTF-16 byte order mark and
// dropping it. Input without a BOM is read as UTF-8. A limit > 0 rejects
// decoded content longer than limit bytes.
func ReadText(r io.Reader, limit int) (string, error) {
	var decoded io.Reader = transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	if limit > 0 {
		decoded = io.LimitReader(decoded, int64(limit)+1)
	}

	data, err := io.ReadAll(decoded)
	if err != nil {
		return "", fmt.Errorf("decoding text: %w", err)
	}
	if limit > 0 && len(data) > limit {
		return "", fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, limit)
	}
	return string(data), nil
}

// ReadTextFile opens path and reads it with ReadText.
func ReadTextFile(path string, limit int) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from discovery or the user
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	return ReadText(f, limit)
}
