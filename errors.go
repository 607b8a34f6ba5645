package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrInputTooLarge  = errors.New("markdown input exceeds size limit")
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// Converter option validation errors.
	ErrInvalidEngine   = errors.New("invalid engine")
	ErrInvalidMaxBytes = errors.New("invalid max bytes")
	ErrUnknownStyle    = pipeline.ErrUnknownStyle

	// Document validation errors.
	ErrTitleTooLong = errors.New("document title too long")
	ErrInvalidLang  = errors.New("invalid document language")
	ErrCSSTooLarge  = errors.New("document CSS exceeds size limit")

	// ErrRelink indicates relative targets could not be rewritten.
	ErrRelink = errors.New("relinking paths failed")
)
