package pipeline

import (
	"context"
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// Line ending normalization.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// NewlinePreprocessor rewrites Windows and classic Mac line endings so that
// line-oriented stages see plain '\n' separators.
type NewlinePreprocessor struct{}

// PreprocessMarkdown normalizes line endings. A cancelled context returns
// content unchanged.
func (p *NewlinePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	return NormalizeLineEndings(content)
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// NFCPreprocessor composes text to Unicode Normalization Form C, so that
// decomposed and precomposed spellings of the same comment render alike.
type NFCPreprocessor struct{}

// PreprocessMarkdown applies NFC. A cancelled context returns content
// unchanged.
func (p *NFCPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	return norm.NFC.String(content)
}
