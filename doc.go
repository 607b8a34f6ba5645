// Package md2html converts short Markdown snippets, such as comments, to HTML.
//
// # Quick Start
//
// For the restricted comment syntax, call Render:
//
//	html := md2html.Render("# Title\nSome **bold** text")
//
// Render is a pure function: it never fails and is safe for concurrent use.
//
// # Supported Syntax
//
// The snippet engine recognizes:
//
//	# Heading            -> <h4> (needs a non-empty line below it)
//	## Subheading        -> <h5> (same rule)
//	   * item            -> <ul><li> (3-4 spaces of indentation)
//	   # item            -> <ol><li>
//	***both***           -> <strong><em>
//	**bold**, *italic*   -> <strong>, <em>
//	~~strike~~           -> <s>
//	`code`               -> <code>
//	[label](url)         -> <a href>
//	a---b---c            -> a&mdash;b&mdash;c
//
// The newline ending every non-empty line becomes a <br>.
// Literal '&', '<', '>' and '"' are escaped first. The quote becomes "&quot"
// without a semicolon and bold-italic closes as </strong></em>; both are
// kept for output compatibility.
//
// # Conversion Pipeline
//
// Converter adds the pieces a service needs around the engine:
//
//  1. Size limit (DefaultMaxBytes, ErrInputTooLarge)
//  2. Optional preprocessing (line endings, Unicode NFC)
//  3. Rendering with the snippet engine or CommonMark (Goldmark)
//  4. Optional relinking of relative targets (Input.Relink)
//  5. Optional standalone HTML5 document wrapping, with the code highlight
//     stylesheet for CommonMark and Document.CSS injected into <head>
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithEngine(md2html.EngineSnippet),
//	    md2html.WithNormalizeNewlines(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Markdown: comment,
//	    Document: &md2html.Document{Title: "Comment"},
//	})
//
// # Error Handling
//
// Render has no errors. Converter returns sentinel errors that can be
// checked with errors.Is:
//
//	if errors.Is(err, md2html.ErrInputTooLarge) {
//	    // Reject the comment
//	}
package md2html
