package md2html

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Engine selects the Markdown renderer.
type Engine string

// Engine constants.
const (
	// EngineSnippet is the restricted comment syntax rendered by Render.
	EngineSnippet Engine = "snippet"
	// EngineCommonMark renders full CommonMark with GFM extensions.
	EngineCommonMark Engine = "commonmark"
)

// ParseEngine resolves an engine name, case-insensitively.
// An empty name selects EngineSnippet.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(name))) {
	case "", EngineSnippet:
		return EngineSnippet, nil
	case EngineCommonMark:
		return EngineCommonMark, nil
	default:
		return "", fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidEngine, name, EngineSnippet, EngineCommonMark)
	}
}

// Size limits.
const (
	// DefaultMaxBytes bounds input size for comment-sized snippets.
	DefaultMaxBytes = 64 << 10

	// MaxTitleLength bounds Document.Title.
	MaxTitleLength = 200

	// MaxCSSBytes bounds Document.CSS.
	MaxCSSBytes = 256 << 10
)

// DefaultHighlightStyle colors fenced code in CommonMark documents.
const DefaultHighlightStyle = pipeline.DefaultHighlightStyle

// HighlightStyles lists the names accepted by WithHighlightStyle, sorted.
func HighlightStyles() []string {
	return pipeline.HighlightStyles()
}

// Input contains the markdown content and per-conversion options.
type Input struct {
	Markdown string    // Markdown source (required, may be empty)
	Document *Document // Optional: wrap the fragment in a standalone page
	Relink   *Relink   // Optional: fix relative targets for the output location
}

// Relink describes where a markdown file lives and where its HTML is
// written. Relative image and link targets are rebased from SourceDir to
// OutputDir, and links to .md/.markdown files point at the .html output.
// Relinking re-serializes the fragment, so entities come out in canonical
// form: &quot becomes &#34;, <br> becomes <br/>, and bold-italic closes
// as </em></strong>.
type Relink struct {
	SourceDir string
	OutputDir string
}

// Document configures standalone HTML output.
// A nil *Document produces a bare fragment.
type Document struct {
	Title string // <title> text, escaped
	Lang  string // BCP 47 tag for <html lang>, default "en"
	CSS   string // Optional: stylesheet injected into <head>
}

// Validate checks document settings.
// Returns nil if d is nil.
func (d *Document) Validate() error {
	if d == nil {
		return nil
	}

	if len(d.Title) > MaxTitleLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrTitleTooLong, len(d.Title), MaxTitleLength)
	}

	if d.Lang != "" {
		if _, err := language.Parse(d.Lang); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidLang, d.Lang, err)
		}
	}

	if len(d.CSS) > MaxCSSBytes {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrCSSTooLarge, len(d.CSS), MaxCSSBytes)
	}

	return nil
}

// ConvertResult contains the output of a conversion.
type ConvertResult struct {
	HTML   string // HTML fragment or standalone document
	Engine Engine // Engine that produced HTML
	Bytes  int    // Size of the markdown input in bytes
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	engine            Engine
	maxBytes          int
	normalizeNewlines bool
	normalizeUnicode  bool
	highlightStyle    *string // nil selects the engine default
}

// WithEngine selects the renderer. Names are validated by NewConverter.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithMaxBytes sets the input size limit. Zero disables the limit;
// negative values are rejected by NewConverter.
func WithMaxBytes(n int) Option {
	return func(c *Converter) {
		c.cfg.maxBytes = n
	}
}

// WithNormalizeNewlines converts \r\n and \r to \n before rendering.
func WithNormalizeNewlines(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.normalizeNewlines = enabled
	}
}

// WithUnicodeNFC composes the input to Unicode NFC before rendering, so
// visually identical comments produce identical HTML.
func WithUnicodeNFC(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.normalizeUnicode = enabled
	}
}

// WithHighlightStyle selects the chroma style whose CSS is added to
// standalone CommonMark documents. An empty name disables the stylesheet.
// Unknown names are rejected by NewConverter. The snippet engine has no
// code highlighting and ignores the style.
func WithHighlightStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = &name
	}
}
