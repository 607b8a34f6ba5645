package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	md2html "github.com/alnah/go-md2html"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input.DefaultDir != "" {
		t.Errorf("Input.DefaultDir = %q, want empty", cfg.Input.DefaultDir)
	}
	if cfg.Output.DefaultDir != "" {
		t.Errorf("Output.DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
	if cfg.Render.Engine != EngineSnippet {
		t.Errorf("Render.Engine = %q, want %q", cfg.Render.Engine, EngineSnippet)
	}
	if cfg.Render.MaxBytes != DefaultMaxBytes {
		t.Errorf("Render.MaxBytes = %d, want %d", cfg.Render.MaxBytes, DefaultMaxBytes)
	}
	if !cfg.Render.NormalizeNewlines {
		t.Error("Render.NormalizeNewlines = false, want true")
	}
	if cfg.Render.NormalizeUnicode {
		t.Error("Render.NormalizeUnicode = true, want false")
	}
	if cfg.Render.HighlightStyle != DefaultHighlightStyle {
		t.Errorf("Render.HighlightStyle = %q, want %q", cfg.Render.HighlightStyle, DefaultHighlightStyle)
	}
	if cfg.Render.RewriteLinks {
		t.Error("Render.RewriteLinks = true, want false")
	}
	if cfg.Document.Standalone {
		t.Error("Document.Standalone = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestDefaultConfig_MatchesLibrary(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Render.MaxBytes != md2html.DefaultMaxBytes {
		t.Errorf("Render.MaxBytes = %d, library default %d", cfg.Render.MaxBytes, md2html.DefaultMaxBytes)
	}
	if cfg.Render.HighlightStyle != md2html.DefaultHighlightStyle {
		t.Errorf("Render.HighlightStyle = %q, library default %q", cfg.Render.HighlightStyle, md2html.DefaultHighlightStyle)
	}
	if MaxTitleLength != md2html.MaxTitleLength {
		t.Errorf("MaxTitleLength = %d, library limit %d", MaxTitleLength, md2html.MaxTitleLength)
	}

	for _, name := range []string{EngineSnippet, EngineCommonMark} {
		engine, err := md2html.ParseEngine(name)
		if err != nil {
			t.Errorf("library rejects engine %q: %v", name, err)
			continue
		}
		_, err = md2html.NewConverter(
			md2html.WithEngine(engine),
			md2html.WithMaxBytes(cfg.Render.MaxBytes),
			md2html.WithHighlightStyle(cfg.Render.HighlightStyle),
		)
		if err != nil {
			t.Errorf("NewConverter() with default config and engine %q: %v", name, err)
		}
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		maxLength int
		wantErr   bool
	}{
		{
			name:      "empty value is valid",
			fieldName: "test",
			value:     "",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value at limit is valid",
			fieldName: "test",
			value:     "1234567890",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value over limit returns error",
			fieldName: "test.field",
			value:     "12345678901",
			maxLength: 10,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength(tt.fieldName, tt.value, tt.maxLength)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				if !strings.Contains(err.Error(), tt.fieldName) {
					t.Errorf("error should mention %q, got: %v", tt.fieldName, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantErr   error
		wantField string
	}{
		{
			name:   "empty engine passes",
			mutate: func(c *Config) { c.Render.Engine = "" },
		},
		{
			name:   "commonmark engine passes",
			mutate: func(c *Config) { c.Render.Engine = EngineCommonMark },
		},
		{
			name:   "engine case insensitive",
			mutate: func(c *Config) { c.Render.Engine = "Snippet" },
		},
		{
			name:      "unknown engine returns error",
			mutate:    func(c *Config) { c.Render.Engine = "pandoc" },
			wantErr:   ErrInvalidField,
			wantField: "render.engine",
		},
		{
			name:   "maxBytes zero means unlimited",
			mutate: func(c *Config) { c.Render.MaxBytes = 0 },
		},
		{
			name:      "negative maxBytes returns error",
			mutate:    func(c *Config) { c.Render.MaxBytes = -1 },
			wantErr:   ErrInvalidField,
			wantField: "render.maxBytes",
		},
		{
			name:      "maxBytes above ceiling returns error",
			mutate:    func(c *Config) { c.Render.MaxBytes = MaxInputBytes + 1 },
			wantErr:   ErrInvalidField,
			wantField: "render.maxBytes",
		},
		{
			name:      "long input dir returns error",
			mutate:    func(c *Config) { c.Input.DefaultDir = strings.Repeat("a", MaxPathLength+1) },
			wantErr:   ErrFieldTooLong,
			wantField: "input.defaultDir",
		},
		{
			name:      "long output dir returns error",
			mutate:    func(c *Config) { c.Output.DefaultDir = strings.Repeat("a", MaxPathLength+1) },
			wantErr:   ErrFieldTooLong,
			wantField: "output.defaultDir",
		},
		{
			name:      "long title returns error",
			mutate:    func(c *Config) { c.Document.Title = strings.Repeat("t", MaxTitleLength+1) },
			wantErr:   ErrFieldTooLong,
			wantField: "document.title",
		},
		{
			name:      "long lang returns error",
			mutate:    func(c *Config) { c.Document.Lang = strings.Repeat("x", MaxLangLength+1) },
			wantErr:   ErrFieldTooLong,
			wantField: "document.lang",
		},
		{
			name:      "long highlight style returns error",
			mutate:    func(c *Config) { c.Render.HighlightStyle = strings.Repeat("s", MaxStyleLength+1) },
			wantErr:   ErrFieldTooLong,
			wantField: "render.highlightStyle",
		},
		{
			name:      "long css path returns error",
			mutate:    func(c *Config) { c.Document.CSS = strings.Repeat("c", MaxPathLength+1) },
			wantErr:   ErrFieldTooLong,
			wantField: "document.css",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("error should mention %s, got: %v", tt.wantField, err)
			}
		})
	}
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty document keeps defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := parseConfig([]byte("  \n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Render.MaxBytes != DefaultMaxBytes {
			t.Errorf("Render.MaxBytes = %d, want %d", cfg.Render.MaxBytes, DefaultMaxBytes)
		}
	})

	t.Run("partial render section keeps other defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := parseConfig([]byte("render:\n  engine: commonmark\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Render.Engine != EngineCommonMark {
			t.Errorf("Render.Engine = %q, want %q", cfg.Render.Engine, EngineCommonMark)
		}
		if !cfg.Render.NormalizeNewlines {
			t.Error("Render.NormalizeNewlines = false, want default true")
		}
		if cfg.Render.MaxBytes != DefaultMaxBytes {
			t.Errorf("Render.MaxBytes = %d, want %d", cfg.Render.MaxBytes, DefaultMaxBytes)
		}
	})

	t.Run("explicit false overrides default", func(t *testing.T) {
		t.Parallel()
		cfg, err := parseConfig([]byte("render:\n  normalizeNewlines: false\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Render.NormalizeNewlines {
			t.Error("Render.NormalizeNewlines = true, want false")
		}
	})

	t.Run("empty highlight style disables highlighting", func(t *testing.T) {
		t.Parallel()
		cfg, err := parseConfig([]byte("render:\n  highlightStyle: \"\"\n  rewriteLinks: true\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Render.HighlightStyle != "" {
			t.Errorf("Render.HighlightStyle = %q, want empty", cfg.Render.HighlightStyle)
		}
		if !cfg.Render.RewriteLinks {
			t.Error("Render.RewriteLinks = false, want true")
		}
	})

	t.Run("oversized input returns ErrConfigTooLarge", func(t *testing.T) {
		t.Parallel()
		_, err := parseConfig(make([]byte, MaxFileSize+1))
		if !errors.Is(err, ErrConfigTooLarge) {
			t.Errorf("error = %v, want ErrConfigTooLarge", err)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "test.yaml")
		content := `input:
  defaultDir: "/path/to/input"
output:
  defaultDir: "/path/to/output"
render:
  engine: commonmark
  maxBytes: 1024
  normalizeUnicode: true
document:
  standalone: true
  title: "Comments"
  lang: "fr"
  css: "theme.css"
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.DefaultDir != "/path/to/input" {
			t.Errorf("Input.DefaultDir = %q, want %q", cfg.Input.DefaultDir, "/path/to/input")
		}
		if cfg.Output.DefaultDir != "/path/to/output" {
			t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "/path/to/output")
		}
		if cfg.Render.Engine != EngineCommonMark {
			t.Errorf("Render.Engine = %q, want %q", cfg.Render.Engine, EngineCommonMark)
		}
		if cfg.Render.MaxBytes != 1024 {
			t.Errorf("Render.MaxBytes = %d, want 1024", cfg.Render.MaxBytes)
		}
		if !cfg.Render.NormalizeUnicode {
			t.Error("Render.NormalizeUnicode = false, want true")
		}
		if !cfg.Document.Standalone {
			t.Error("Document.Standalone = false, want true")
		}
		if cfg.Document.Title != "Comments" {
			t.Errorf("Document.Title = %q, want %q", cfg.Document.Title, "Comments")
		}
		if cfg.Document.Lang != "fr" {
			t.Errorf("Document.Lang = %q, want %q", cfg.Document.Lang, "fr")
		}
		if cfg.Document.CSS != "theme.css" {
			t.Errorf("Document.CSS = %q, want %q", cfg.Document.CSS, "theme.css")
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(configPath, []byte("render: [unclosed"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "unknown.yaml")
		content := `render:
  engine: snippet
  theme: "dark"
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid engine returns ErrInvalidField", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "engine.yaml")
		if err := os.WriteFile(configPath, []byte("render:\n  engine: pandoc\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidField) {
			t.Errorf("error = %v, want ErrInvalidField", err)
		}
	})

	t.Run("config name resolves yaml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "myconfig.yaml"), []byte("document:\n  title: fromname\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		t.Chdir(dir)

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Document.Title != "fromname" {
			t.Errorf("Document.Title = %q, want %q", cfg.Document.Title, "fromname")
		}
	})

	t.Run("config name prefers yaml over yml", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "myconfig.yaml"), []byte("document:\n  title: yaml\n"), 0600); err != nil {
			t.Fatalf("setup yaml: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "myconfig.yml"), []byte("document:\n  title: yml\n"), 0600); err != nil {
			t.Fatalf("setup yml: %v", err)
		}
		t.Chdir(dir)

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Document.Title != "yaml" {
			t.Errorf("Document.Title = %q, want %q (should prefer .yaml)", cfg.Document.Title, "yaml")
		}
	})

	t.Run("unknown config name lists searched paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("md2html-missing-config")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "md2html-missing-config.yml") {
			t.Errorf("error should list searched paths, got: %v", err)
		}
	})
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("team")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() returned %d paths, want at least 2", len(paths))
	}
	if paths[0] != "team.yaml" || paths[1] != "team.yml" {
		t.Errorf("local paths = %v, want [team.yaml team.yml]", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, AppDir) {
			t.Errorf("user path %q should be under %s", p, AppDir)
		}
	}
}
