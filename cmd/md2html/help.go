package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert markdown to HTML (default)")
	fmt.Fprintln(w, "  styles      List code highlight styles")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2html help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html convert [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown comments to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, directory, or - for stdin")
	fmt.Fprintln(w, "           (optional: input.defaultDir, then piped stdin)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (stdin: default stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -e, --engine <s>          Renderer: snippet (default), commonmark")
	fmt.Fprintln(w, "      --max-bytes <n>       Input size limit (default 65536, 0 = unlimited)")
	fmt.Fprintln(w, "      --no-normalize        Keep \\r\\n and \\r line endings")
	fmt.Fprintln(w, "      --nfc                 Compose input to Unicode NFC")
	fmt.Fprintln(w, "      --highlight-style <s> Code style for commonmark documents (default github)")
	fmt.Fprintln(w, "      --rewrite-links       Rebase relative links and images to the output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --standalone          Wrap output in an HTML5 document")
	fmt.Fprintln(w, "      --title <s>           Document title (\"\" = input file name)")
	fmt.Fprintln(w, "      --lang <s>            Document language (default: en)")
	fmt.Fprintln(w, "      --css <file>          Stylesheet embedded in the document")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2HTML_CONFIG, MD2HTML_ENGINE, MD2HTML_INPUT_DIR, MD2HTML_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MD2HTML_MAX_BYTES, MD2HTML_WORKERS")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	if !isCommand(args[0]) {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "styles":
		fmt.Fprintln(env.Stdout, "Usage: md2html styles")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "List the names accepted by --highlight-style.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	}
	return nil
}
