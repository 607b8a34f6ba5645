package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds engine and preprocessing flags.
type renderFlags struct {
	engine      string
	maxBytes    int
	maxBytesSet bool // --max-bytes given; 0 is a valid value (unlimited)
	noNormalize bool
	nfc         bool

	highlightStyle    string
	highlightStyleSet bool // --highlight-style given; "" disables highlighting
	rewriteLinks      bool
}

// documentFlags holds standalone document flags.
type documentFlags struct {
	standalone bool
	title      string
	lang       string
	css        string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	workers  int
	render   renderFlags
	document documentFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addRenderFlags adds rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.engine, "engine", "e", "", "renderer: snippet, commonmark")
	fs.IntVar(&f.maxBytes, "max-bytes", 0, "input size limit in bytes (0 = unlimited)")
	fs.BoolVar(&f.noNormalize, "no-normalize", false, "keep \\r\\n and \\r line endings")
	fs.BoolVar(&f.nfc, "nfc", false, "compose input to Unicode NFC")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "code highlight style for commonmark documents (\"\" = none)")
	fs.BoolVar(&f.rewriteLinks, "rewrite-links", false, "rebase relative links and images to the output directory")
}

// addDocumentFlags adds standalone document flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.BoolVar(&f.standalone, "standalone", false, "wrap output in an HTML5 document")
	fs.StringVar(&f.title, "title", "", "document title (\"\" = input file name)")
	fs.StringVar(&f.lang, "lang", "", "document language (default: en)")
	fs.StringVar(&f.css, "css", "", "stylesheet file to embed in the document")
}

// newConvertFlagSet registers every convert flag on a new FlagSet bound to f.
// Shared by parseConvertFlags and shell completion.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	addDocumentFlags(fs, &f.document)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
// Usage goes to usageOut when the flag package prints it (-h, bad flags).
func parseConvertFlags(args []string, usageOut io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.Usage = func() { printConvertUsage(usageOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.render.maxBytesSet = fs.Changed("max-bytes")
	f.render.highlightStyleSet = fs.Changed("highlight-style")

	return f, fs.Args(), nil
}

// wantsVerbose reports whether args request verbose output.
// Used before full parsing so automaxprocs can log through the same switch.
func wantsVerbose(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
