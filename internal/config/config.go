package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigTooLarge  = errors.New("config file exceeds maximum size")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid field value")
)

// MaxFileSize limits config input to prevent memory exhaustion.
const MaxFileSize = 1 << 20

// Field limits.
const (
	MaxPathLength  = 4096                   // Directory paths
	MaxTitleLength = md2html.MaxTitleLength // Standalone document title
	MaxLangLength  = 35                     // BCP 47 tag, generous
	MaxStyleLength = 64                     // Highlight style name
	MaxInputBytes  = 16 << 20               // Upper bound for render.maxBytes
)

// Render defaults follow the library.
const (
	DefaultMaxBytes       = md2html.DefaultMaxBytes
	DefaultHighlightStyle = md2html.DefaultHighlightStyle
)

// Engine names accepted in render.engine.
const (
	EngineSnippet    = string(md2html.EngineSnippet)
	EngineCommonMark = string(md2html.EngineCommonMark)
)

// AppDir is the directory name under the user config directory.
const AppDir = "go-md2html"

// Config holds all configuration for HTML generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Render   RenderConfig   `yaml:"render"`
	Document DocumentConfig `yaml:"document"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = stdin or argument)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// RenderConfig defines engine and preprocessing options.
type RenderConfig struct {
	Engine            string `yaml:"engine"`            // "snippet" (default) or "commonmark"
	MaxBytes          int    `yaml:"maxBytes"`          // Input size limit, 0 = unlimited
	NormalizeNewlines bool   `yaml:"normalizeNewlines"` // Convert \r\n and \r to \n
	NormalizeUnicode  bool   `yaml:"normalizeUnicode"`  // Compose input to NFC
	HighlightStyle    string `yaml:"highlightStyle"`    // Chroma style for commonmark documents, "" = none
	RewriteLinks      bool   `yaml:"rewriteLinks"`      // Rebase relative targets to the output directory
}

// DocumentConfig defines standalone HTML output.
type DocumentConfig struct {
	Standalone bool   `yaml:"standalone"` // Wrap fragments in an HTML5 document
	Title      string `yaml:"title"`      // Empty = input file name
	Lang       string `yaml:"lang"`       // Empty = "en"
	CSS        string `yaml:"css"`        // Stylesheet file injected into <head>
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Engine:            EngineSnippet,
			MaxBytes:          DefaultMaxBytes,
			NormalizeNewlines: true,
			HighlightStyle:    DefaultHighlightStyle,
		},
	}
}

// Validate checks enum values and field lengths.
// Called automatically by LoadConfig, but available for callers that
// build a Config by hand or merge flags into it.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	switch strings.ToLower(c.Render.Engine) {
	case "", EngineSnippet, EngineCommonMark:
		// valid
	default:
		return fmt.Errorf("%w: render.engine %q (must be %s or %s)", ErrInvalidField, c.Render.Engine, EngineSnippet, EngineCommonMark)
	}
	if c.Render.MaxBytes < 0 || c.Render.MaxBytes > MaxInputBytes {
		return fmt.Errorf("%w: render.maxBytes must be between 0 and %d, got %d", ErrInvalidField, MaxInputBytes, c.Render.MaxBytes)
	}
	if err := validateFieldLength("render.highlightStyle", c.Render.HighlightStyle, MaxStyleLength); err != nil {
		return err
	}

	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.lang", c.Document.Lang, MaxLangLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.css", c.Document.CSS, MaxPathLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseConfig decodes YAML on top of DefaultConfig, rejecting unknown
// fields.
func parseConfig(data []byte) (*Config, error) {
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxFileSize)
	}

	cfg := DefaultConfig()
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

// SearchPaths lists the files tried for a config name, in order.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-md2html/
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
