package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput = errors.New("no input specified")
	ErrUsage   = errors.New("invalid usage")
)

// engineNames lists the values accepted by --engine.
var engineNames = []string{string(md2html.EngineSnippet), string(md2html.EngineCommonMark)}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positionalArgs, err := parseConvertFlags(args, env.Stdout)
	if err != nil {
		// fs.Usage already printed convert usage
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if len(positionalArgs) > 1 {
		return fmt.Errorf("%w: expected at most one input, got %d", ErrUsage, len(positionalArgs))
	}

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}

	// Precedence: flags > env > config file > defaults
	applyEnvConfig(envCfg, cfg)
	if err := mergeFlags(flags, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	conv, err := newConverter(cfg)
	if err != nil {
		return err
	}

	css, err := loadCSS(cfg.Document.CSS)
	if err != nil {
		return err
	}

	params := &conversionParams{
		standalone:   cfg.Document.Standalone,
		title:        cfg.Document.Title,
		lang:         cfg.Document.Lang,
		css:          css,
		rewriteLinks: cfg.Render.RewriteLinks,
		maxBytes:     cfg.Render.MaxBytes,
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg, env)
	if err != nil {
		return err
	}
	outputPath := resolveOutputDir(flags.output, cfg)

	if inputPath == stdinMarker {
		return convertStdin(ctx, conv, outputPath, params, env)
	}

	files, err := discoverFiles(inputPath, outputPath)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputPath)
	}

	workers := resolveWorkers(flags.workers, envCfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Engine: %s, workers: %d, files: %d\n", conv.Engine(), workers, len(files))
	}

	results := convertBatch(ctx, conv, workers, files, params)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}

	return nil
}

// loadConfig loads the config named by the flag, falling back to
// MD2HTML_CONFIG, or returns defaults when neither is set.
func loadConfig(flagConfig, envConfig string) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envConfig
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) error {
	if flags.render.engine != "" {
		engine, err := md2html.ParseEngine(flags.render.engine)
		if err != nil {
			return fmt.Errorf("%w%s", err, hints.ForInvalidEngine(engineNames))
		}
		cfg.Render.Engine = string(engine)
	}
	if flags.render.maxBytesSet {
		if flags.render.maxBytes < 0 {
			return fmt.Errorf("%w: --max-bytes %d (must be >= 0, 0 means unlimited)", md2html.ErrInvalidMaxBytes, flags.render.maxBytes)
		}
		cfg.Render.MaxBytes = flags.render.maxBytes
	}
	if flags.render.noNormalize {
		cfg.Render.NormalizeNewlines = false
	}
	if flags.render.nfc {
		cfg.Render.NormalizeUnicode = true
	}
	if flags.render.highlightStyleSet {
		cfg.Render.HighlightStyle = flags.render.highlightStyle
	}
	if flags.render.rewriteLinks {
		cfg.Render.RewriteLinks = true
	}

	if flags.document.standalone {
		cfg.Document.Standalone = true
	}
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.lang != "" {
		cfg.Document.Lang = flags.document.lang
	}
	if flags.document.css != "" {
		cfg.Document.CSS = flags.document.css
	}
	return nil
}

// newConverter builds the library converter from the merged config.
func newConverter(cfg *config.Config) (*md2html.Converter, error) {
	engine, err := md2html.ParseEngine(cfg.Render.Engine)
	if err != nil {
		return nil, fmt.Errorf("%w%s", err, hints.ForInvalidEngine(engineNames))
	}
	conv, err := md2html.NewConverter(
		md2html.WithEngine(engine),
		md2html.WithMaxBytes(cfg.Render.MaxBytes),
		md2html.WithNormalizeNewlines(cfg.Render.NormalizeNewlines),
		md2html.WithUnicodeNFC(cfg.Render.NormalizeUnicode),
		md2html.WithHighlightStyle(cfg.Render.HighlightStyle),
	)
	if errors.Is(err, md2html.ErrUnknownStyle) {
		return nil, fmt.Errorf("%w%s", err, hints.ForUnknownStyle())
	}
	return conv, err
}

// loadCSS reads the stylesheet named by document.css, if any.
func loadCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	css, err := fileutil.ReadTextFile(path, md2html.MaxCSSBytes)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadCSS, err)
	}
	return css, nil
}

// resolveInputPath picks the markdown source.
// Priority: positional argument > input.defaultDir > piped stdin.
func resolveInputPath(args []string, cfg *config.Config, env *Environment) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	if env.StdinIsTerminal() {
		return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
	}
	return stdinMarker, nil
}

// resolveOutputDir returns the output path from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// convertStdin renders standard input to stdout, or to outputPath when set.
// A directory output path receives stdin.html.
func convertStdin(ctx context.Context, conv CLIConverter, outputPath string, params *conversionParams, env *Environment) error {
	content, err := fileutil.ReadText(env.Stdin, config.MaxInputBytes)
	if err != nil {
		return fmt.Errorf("%w: stdin: %w", ErrReadMarkdown, err)
	}

	if outputPath != "" && !strings.HasSuffix(strings.ToLower(outputPath), htmlExt) {
		outputPath = resolveOutputPath("stdin.md", outputPath, "")
	}

	result, err := conv.Convert(ctx, md2html.Input{
		Markdown: content,
		Document: params.document(""),
		Relink:   params.relink("", outputPath),
	})
	if err != nil {
		if errors.Is(err, md2html.ErrInputTooLarge) {
			return fmt.Errorf("%w%s", err, hints.ForInputTooLarge(params.maxBytes))
		}
		return err
	}

	if outputPath == "" {
		if _, err := io.WriteString(env.Stdout, result.HTML); err != nil {
			return fmt.Errorf("%w: stdout: %w", ErrWriteHTML, err)
		}
		return nil
	}

	return writeHTML(outputPath, result.HTML)
}
