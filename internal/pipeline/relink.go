package pipeline

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// markdownExts are link targets that become .html after conversion.
var markdownExts = map[string]bool{".md": true, ".markdown": true}

// RelinkPaths fixes relative link and image targets after a markdown file
// in sourceDir is rendered into outputDir.
// Links to markdown files are pointed at their converted .html names; the
// output tree mirrors the source tree, so their relative path is kept.
// Every other relative target is rebased so it resolves from outputDir.
// Returns the HTML unchanged if either directory is empty.
//
// The HTML is re-serialized, so entities and void elements come out in
// the serializer's canonical form.
//
// Rewrites a[href] and img[src]. URLs with a scheme or host, anchors and
// absolute paths are left alone.
func RelinkPaths(htmlContent, sourceDir, outputDir string) (string, error) {
	if sourceDir == "" || outputDir == "" {
		return htmlContent, nil
	}

	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}
	absOutput, err := filepath.Abs(outputDir)
	if err != nil {
		return "", err
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	relinkNode(doc, absSource, absOutput)

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node and whether it was a fragment.
func parseHTML(content string) (*html.Node, bool, error) {
	lower := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse in body context to avoid an <html><body> wrapper
	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the tree back to a string. Fragments render their
// children only.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func relinkNode(n *html.Node, sourceDir, outputDir string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			relinkAttr(n, "src", sourceDir, outputDir, false)
		case atom.A:
			relinkAttr(n, "href", sourceDir, outputDir, true)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		relinkNode(c, sourceDir, outputDir)
	}
}

// relinkAttr rewrites a single attribute if it holds a relative path.
func relinkAttr(n *html.Node, attrName, sourceDir, outputDir string, renameMarkdown bool) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isRelativePath(attr.Val) {
			continue
		}

		u, err := url.Parse(attr.Val)
		if err != nil || u.Path == "" {
			continue
		}

		if renameMarkdown {
			if ext := path.Ext(u.Path); markdownExts[strings.ToLower(ext)] {
				u.Path = strings.TrimSuffix(u.Path, ext) + ".html"
				n.Attr[i].Val = u.String()
				continue
			}
		}

		rel, err := filepath.Rel(outputDir, filepath.Join(sourceDir, filepath.FromSlash(u.Path)))
		if err != nil {
			continue
		}

		u.Path = filepath.ToSlash(rel)
		n.Attr[i].Val = u.String()
	}
}

// isRelativePath returns true if the value is a relative filesystem path.
func isRelativePath(p string) bool {
	if p == "" || strings.HasPrefix(p, "#") || strings.HasPrefix(p, "//") {
		return false
	}
	if filepath.IsAbs(p) || strings.HasPrefix(p, "/") {
		return false
	}

	u, err := url.Parse(p)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}
