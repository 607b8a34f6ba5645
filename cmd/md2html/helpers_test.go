package main

// Notes:
// - Test infrastructure shared by the command tests: an Environment backed by
//   buffers and a fake process environment, plus a scripted converter.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	md2html "github.com/alnah/go-md2html"
)

// ---------------------------------------------------------------------------
// Test Environment
// ---------------------------------------------------------------------------

type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an Environment reading stdin from the given string.
// vars replaces the process environment.
func newTestEnv(stdin string, terminal bool, vars map[string]string) *testEnv {
	var stdout, stderr bytes.Buffer
	environ := make([]string, 0, len(vars))
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}
	return &testEnv{
		Environment: &Environment{
			Now:             func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
			Stdin:           strings.NewReader(stdin),
			Stdout:          &stdout,
			Stderr:          &stderr,
			StdinIsTerminal: func() bool { return terminal },
			Getenv:          func(k string) string { return vars[k] },
			Environ:         func() []string { return environ },
		},
		stdout: &stdout,
		stderr: &stderr,
	}
}

// writeFile creates path under dir with content and returns the full path.
func writeFile(t *testing.T, dir, path, content string) string {
	t.Helper()
	full := filepath.Join(dir, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("setup mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("setup write: %v", err)
	}
	return full
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// Mock Converter
// ---------------------------------------------------------------------------

// mockConverter records inputs and fails for markdown listed in failOn.
type mockConverter struct {
	mu     sync.Mutex
	inputs []md2html.Input
	failOn map[string]error
}

func (m *mockConverter) Convert(_ context.Context, input md2html.Input) (*md2html.ConvertResult, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()

	if err, ok := m.failOn[input.Markdown]; ok {
		return nil, err
	}
	return &md2html.ConvertResult{
		HTML:   "<p>" + input.Markdown + "</p>",
		Engine: md2html.EngineSnippet,
		Bytes:  len(input.Markdown),
	}, nil
}
