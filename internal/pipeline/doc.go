// Package pipeline implements the Markdown-to-HTML rewrite stages.
//
// The snippet engine is an ordered chain of pure text-to-text stages:
//   - HTML character escaping
//   - Block constructs resolved line by line (headings, list blocks)
//   - Inline constructs resolved with precompiled patterns (list items,
//     emphasis, strikethrough, code, links)
//   - Line breaks and em-dashes
//
// Each stage scans the whole text produced by the previous one. There is no
// syntax tree: the order of the chain is what keeps earlier replacements from
// being misread by later ones.
//
// The package also hosts the CommonMark engine (Goldmark), line ending
// normalization and standalone document wrapping used by the root md2html
// package.
package pipeline
