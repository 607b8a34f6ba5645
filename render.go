package md2html

import "github.com/alnah/go-md2html/internal/pipeline"

// Render converts a Markdown snippet to an HTML fragment.
//
// Literal '&', '<', '>' and '"' are escaped before any markup is recognized.
// Render never fails and is safe for concurrent use; text it does not
// recognize is returned escaped but otherwise unchanged.
func Render(raw string) string {
	return pipeline.RenderSnippet(raw)
}
