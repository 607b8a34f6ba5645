package md2html

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.NewlinePreprocessor)(nil)
	_ pipeline.MarkdownPreprocessor = (*pipeline.NFCPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.SnippetConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// Converter runs the markdown-to-HTML pipeline with size limits,
// preprocessing and optional document wrapping.
// A Converter is immutable after NewConverter and safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	preprocessors []pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	highlightCSS  string
}

// NewConverter creates a Converter. Without options it renders the snippet
// engine with DefaultMaxBytes and no preprocessing, so Convert produces the
// same HTML as Render.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			engine:   EngineSnippet,
			maxBytes: DefaultMaxBytes,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	engine, err := ParseEngine(string(c.cfg.engine))
	if err != nil {
		return nil, err
	}
	c.cfg.engine = engine

	if c.cfg.maxBytes < 0 {
		return nil, fmt.Errorf("%w: %d (must be >= 0, 0 means unlimited)", ErrInvalidMaxBytes, c.cfg.maxBytes)
	}

	// Converters may be injected by tests
	if c.htmlConverter == nil {
		switch c.cfg.engine {
		case EngineCommonMark:
			c.htmlConverter = pipeline.NewGoldmarkConverter()
		default:
			c.htmlConverter = &pipeline.SnippetConverter{}
		}
	}

	c.cssInjector = &pipeline.CSSInjection{}

	if c.cfg.engine == EngineCommonMark {
		style := DefaultHighlightStyle
		if c.cfg.highlightStyle != nil {
			style = *c.cfg.highlightStyle
		}
		if style != "" {
			css, err := pipeline.HighlightCSS(style)
			if err != nil {
				return nil, err
			}
			c.highlightCSS = css
		}
	}

	if c.cfg.normalizeNewlines {
		c.preprocessors = append(c.preprocessors, &pipeline.NewlinePreprocessor{})
	}
	if c.cfg.normalizeUnicode {
		c.preprocessors = append(c.preprocessors, &pipeline.NFCPreprocessor{})
	}

	return c, nil
}

// Engine returns the renderer selected for this converter.
func (c *Converter) Engine() Engine {
	return c.cfg.engine
}

// Convert renders input.Markdown to HTML.
// Relative targets are relinked before document wrapping. Standalone
// documents get the highlight stylesheet first and Document.CSS after it,
// so user rules win.
// The context is used for cancellation.
func (c *Converter) Convert(ctx context.Context, input Input) (*ConvertResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	content := input.Markdown
	for _, p := range c.preprocessors {
		content = p.PreprocessMarkdown(ctx, content)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	htmlContent, err := c.htmlConverter.ToHTML(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	if input.Relink != nil {
		htmlContent, err = pipeline.RelinkPaths(htmlContent, input.Relink.SourceDir, input.Relink.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRelink, err)
		}
	}

	if input.Document != nil {
		htmlContent = pipeline.WrapDocument(htmlContent, input.Document.Title, input.Document.Lang)
		htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, c.highlightCSS)
		htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, input.Document.CSS)
	}

	return &ConvertResult{
		HTML:   htmlContent,
		Engine: c.cfg.engine,
		Bytes:  len(input.Markdown),
	}, nil
}

// validateInput checks size limits and document settings.
// Empty markdown is valid and renders to an empty fragment.
func (c *Converter) validateInput(input Input) error {
	if c.cfg.maxBytes > 0 && len(input.Markdown) > c.cfg.maxBytes {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(input.Markdown), c.cfg.maxBytes)
	}
	return input.Document.Validate()
}
