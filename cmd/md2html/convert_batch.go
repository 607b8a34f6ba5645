package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
	ErrReadCSS      = errors.New("failed to read CSS file")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input md2html.Input) (*md2html.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2html.Converter)(nil)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	standalone   bool
	title        string // Empty = per-file name
	lang         string
	css          string // Stylesheet contents, standalone only
	rewriteLinks bool
	maxBytes     int // Reported in size hints
}

// document builds the standalone settings for one input, nil for fragments.
func (p *conversionParams) document(inputPath string) *md2html.Document {
	if !p.standalone {
		return nil
	}
	title := p.title
	if title == "" && inputPath != "" {
		base := filepath.Base(inputPath)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return &md2html.Document{Title: title, Lang: p.lang, CSS: p.css}
}

// relink returns the relinking settings for one conversion, nil when
// disabled. Stdin input has no file, so it resolves from the working
// directory.
func (p *conversionParams) relink(inputPath, outputPath string) *md2html.Relink {
	if !p.rewriteLinks || outputPath == "" {
		return nil
	}
	sourceDir := "."
	if inputPath != "" {
		sourceDir = filepath.Dir(inputPath)
	}
	return &md2html.Relink{SourceDir: sourceDir, OutputDir: filepath.Dir(outputPath)}
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently with a fixed set of workers.
// Results keep the order of files.
func convertBatch(ctx context.Context, conv CLIConverter, workers int, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := max(min(workers, len(files)), 1)

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := fileutil.ReadTextFile(f.InputPath, config.MaxInputBytes)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrReadMarkdown, err))
	}

	convResult, err := conv.Convert(ctx, md2html.Input{
		Markdown: content,
		Document: params.document(f.InputPath),
		Relink:   params.relink(f.InputPath, f.OutputPath),
	})
	if err != nil {
		if errors.Is(err, md2html.ErrInputTooLarge) {
			return fail(fmt.Errorf("%w%s", err, hints.ForInputTooLarge(params.maxBytes)))
		}
		return fail(err)
	}

	if err := writeHTML(f.OutputPath, convResult.HTML); err != nil {
		return fail(err)
	}

	result.Duration = time.Since(start)
	return result
}

// writeHTML writes html to path, creating parent directories.
func writeHTML(path, html string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
	}
	// #nosec G306 -- HTML files are meant to be readable
	if err := os.WriteFile(path, []byte(html), filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteHTML, err)
	}
	return nil
}

// resolveWorkers determines the worker count.
// Priority: explicit flag > MD2HTML_WORKERS > GOMAXPROCS-based calculation.
func resolveWorkers(flagWorkers, envWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if envWorkers > 0 {
		return min(envWorkers, maxWorkers)
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0) / 2

	// Minimum 1, maximum 8
	return max(1, min(n, 8))
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
