package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
)

// envPrefix is shared by every recognized variable.
const envPrefix = "MD2HTML_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2HTML_CONFIG: config file name or path
	Engine     string // MD2HTML_ENGINE: snippet or commonmark
	InputDir   string // MD2HTML_INPUT_DIR: default input directory
	OutputDir  string // MD2HTML_OUTPUT_DIR: default output directory
	MaxBytes   *int   // MD2HTML_MAX_BYTES: input size limit, nil when unset
	Workers    int    // MD2HTML_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":     true,
	"MD2HTML_ENGINE":     true,
	"MD2HTML_INPUT_DIR":  true,
	"MD2HTML_OUTPUT_DIR": true,
	"MD2HTML_MAX_BYTES":  true,
	"MD2HTML_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers are ignored rather than reported.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MD2HTML_CONFIG"),
		Engine:     getenv("MD2HTML_ENGINE"),
		InputDir:   getenv("MD2HTML_INPUT_DIR"),
		OutputDir:  getenv("MD2HTML_OUTPUT_DIR"),
	}

	// 0 disables the limit, so only negatives are rejected
	if v := getenv("MD2HTML_MAX_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxBytes = &n
		}
	}

	if v := getenv("MD2HTML_WORKERS"); v != "" {
		if w, err := strconv.Atoi(v); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables.
// Helps catch typos like MD2HTML_ENGIN.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; CLI flags are applied later by
// mergeFlags. Resulting precedence: flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Engine != "" {
		cfg.Render.Engine = env.Engine
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.MaxBytes != nil {
		cfg.Render.MaxBytes = *env.MaxBytes
	}
}
