package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestSnippetConverter_ToHTML(t *testing.T) {
	t.Parallel()

	c := &SnippetConverter{}
	got, err := c.ToHTML(context.Background(), "**hi** <x>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "<strong>hi</strong> &lt;x&gt;"; got != want {
		t.Errorf("ToHTML() = %q, want %q", got, want)
	}
}

func TestSnippetConverter_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &SnippetConverter{}
	if _, err := c.ToHTML(ctx, "text"); err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	c := NewGoldmarkConverter()

	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "emphasis",
			input:    "**bold** and *italic*",
			contains: []string{"<strong>bold</strong>", "<em>italic</em>"},
		},
		{
			name:     "GFM strikethrough",
			input:    "~~gone~~",
			contains: []string{"<del>gone</del>"},
		},
		{
			name:     "headings keep CommonMark levels",
			input:    "# Title",
			contains: []string{"<h1>Title</h1>"},
		},
		{
			name:     "hard wraps",
			input:    "line one\nline two",
			contains: []string{"<br"},
		},
		{
			name:     "raw HTML is dropped",
			input:    "<script>alert(1)</script>",
			excludes: []string{"<script>"},
		},
		{
			name:     "fenced code is highlighted with classes",
			input:    "```go\npackage main\n```",
			contains: []string{`class="chroma"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("output contains %q:\n%s", unwanted, got)
				}
			}
		})
	}
}

func TestGoldmarkConverter_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewGoldmarkConverter()
	if _, err := c.ToHTML(ctx, "# Title"); err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
