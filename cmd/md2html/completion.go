package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	md2html "github.com/alnah/go-md2html"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long   string   // --output
	Short  string   // -o (empty if none)
	Type   flagType // completion type
	Desc   string   // help text
	Exts   []string // file extensions for flagFile, without dot
	Values []string // for enum flags
}

// completionMeta holds completion hints the FlagSet cannot express.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values func() []string // enum values
	Exts   []string        // file extensions
	IsDir  bool            // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"engine":          {Values: func() []string { return engineNames }},
	"highlight-style": {Values: md2html.HighlightStyles},
	"config":          {Exts: []string{"yaml", "yml"}},
	"css":             {Exts: []string{"css"}},
	"output":          {IsDir: true},
}

// markdownExts are the input file extensions offered for arguments.
var markdownExts = []string{"md", "markdown"}

// command lists a top-level command for completion.
type command struct {
	Name string
	Desc string
}

var commands = []command{
	{"convert", "Convert markdown to HTML (default)"},
	{"styles", "List code highlight styles"},
	{"version", "Show version information"},
	{"help", "Show help for a command"},
	{"completion", "Generate shell completion script"},
}

// convertFlagDefs extracts flag definitions from the convert FlagSet,
// enriched with flagCompletionMeta.
func convertFlagDefs() []flagDef {
	var defs []flagDef

	newConvertFlagSet(&convertFlags{}).VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case meta.Values != nil:
				fd.Type = flagEnum
				fd.Values = meta.Values()
			case len(meta.Exts) > 0:
				fd.Type = flagFile
				fd.Exts = meta.Exts
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		defs = append(defs, fd)
	})

	return defs
}

// GenerateCompletion writes a shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = bashCompletion(convertFlagDefs())
	case ShellZsh:
		script = zshCompletion(convertFlagDefs())
	case ShellFish:
		script = fishCompletion(convertFlagDefs())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}

	if _, err := io.WriteString(w, script); err != nil {
		return fmt.Errorf("writing completion script: %w", err)
	}
	return nil
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: completion takes one shell name", ErrUsage)
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(md2html completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(md2html completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    md2html completion fish > ~/.config/fish/completions/md2html.fish")
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func bashCompletion(defs []flagDef) string {
	var b strings.Builder

	b.WriteString("# bash completion for md2html\n")
	b.WriteString("_md2html() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")

	b.WriteString("    case \"${prev}\" in\n")
	var valueFlags []string
	for _, d := range defs {
		names := bashNames(d)
		switch d.Type {
		case flagEnum:
			fmt.Fprintf(&b, "        %s)\n            COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n            return ;;\n",
				names, strings.Join(d.Values, " "))
		case flagFile:
			fmt.Fprintf(&b, "        %s)\n            COMPREPLY=( $(compgen -f -X '!*.@(%s)' -- \"${cur}\") $(compgen -d -- \"${cur}\") )\n            return ;;\n",
				names, strings.Join(d.Exts, "|"))
		case flagDir:
			fmt.Fprintf(&b, "        %s)\n            COMPREPLY=( $(compgen -d -- \"${cur}\") )\n            return ;;\n", names)
		case flagString, flagInt:
			valueFlags = append(valueFlags, names)
		}
	}
	if len(valueFlags) > 0 {
		fmt.Fprintf(&b, "        %s)\n            return ;;\n", strings.Join(valueFlags, "|"))
	}
	b.WriteString("    esac\n\n")

	var words []string
	for _, d := range defs {
		words = append(words, "--"+d.Long)
		if d.Short != "" {
			words = append(words, "-"+d.Short)
		}
	}
	b.WriteString("    if [[ ${cur} == -* ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", strings.Join(words, " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", strings.Join(commandNames(), " "))
	b.WriteString("    fi\n")
	fmt.Fprintf(&b, "    COMPREPLY+=( $(compgen -f -X '!*.@(%s)' -- \"${cur}\") $(compgen -d -- \"${cur}\") )\n",
		strings.Join(markdownExts, "|"))
	b.WriteString("}\n")
	b.WriteString("shopt -s extglob\n")
	b.WriteString("complete -o filenames -F _md2html md2html\n")

	return b.String()
}

// bashNames returns the case pattern matching a flag, e.g. "--output|-o".
func bashNames(d flagDef) string {
	if d.Short == "" {
		return "--" + d.Long
	}
	return "--" + d.Long + "|-" + d.Short
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func zshCompletion(defs []flagDef) string {
	var b strings.Builder

	b.WriteString("#compdef md2html\n\n")
	b.WriteString("_md2html() {\n")
	b.WriteString("  local -a commands\n")
	b.WriteString("  commands=(\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "    '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("  )\n\n")

	b.WriteString("  _arguments -s \\\n")
	for _, d := range defs {
		fmt.Fprintf(&b, "    %s \\\n", zshSpec(d))
	}
	b.WriteString("    '1: :->first' \\\n")
	fmt.Fprintf(&b, "    '*:markdown file:_files -g \"*.(%s)\"'\n\n", strings.Join(markdownExts, "|"))

	b.WriteString("  if [[ $state == first ]]; then\n")
	b.WriteString("    _describe -t commands 'md2html command' commands\n")
	fmt.Fprintf(&b, "    _files -g '*.(%s)'\n", strings.Join(markdownExts, "|"))
	b.WriteString("  fi\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _md2html md2html\n")

	return b.String()
}

// zshSpec renders one _arguments spec, e.g.
// '(-o --output)'{-o,--output}'[output file or directory]:path:_files -/'.
func zshSpec(d flagDef) string {
	var action string
	switch d.Type {
	case flagEnum:
		action = ":" + d.Long + ":(" + strings.Join(d.Values, " ") + ")"
	case flagFile:
		action = ":file:_files -g \"*.(" + strings.Join(d.Exts, "|") + ")\""
	case flagDir:
		action = ":path:_files -/"
	case flagString, flagInt:
		action = ":" + d.Long + ": "
	}

	desc := "[" + zshEscape(d.Desc) + "]" + action
	if d.Short == "" {
		return "'--" + d.Long + desc + "'"
	}
	return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'%s'", d.Short, d.Long, d.Short, d.Long, desc)
}

// zshEscape escapes text for a single-quoted _arguments description.
func zshEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)
	return r.Replace(s)
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func fishCompletion(defs []flagDef) string {
	var b strings.Builder

	b.WriteString("# fish completion for md2html\n")
	b.WriteString("complete -c md2html -f\n\n")

	for _, c := range commands {
		fmt.Fprintf(&b, "complete -c md2html -n __fish_use_subcommand -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}
	fmt.Fprintf(&b, "complete -c md2html -n 'not __fish_seen_subcommand_from styles version help completion' -a '(__fish_complete_suffix .%s)'\n\n",
		markdownExts[0])

	for _, d := range defs {
		line := "complete -c md2html -l " + d.Long
		if d.Short != "" {
			line += " -s " + d.Short
		}
		line += " -d '" + fishEscape(d.Desc) + "'"

		switch d.Type {
		case flagEnum:
			line += " -x -a '" + strings.Join(d.Values, " ") + "'"
		case flagFile:
			line += " -r -a '(__fish_complete_suffix ." + d.Exts[0] + ")'"
		case flagDir:
			line += " -r -a '(__fish_complete_directories)'"
		case flagString, flagInt:
			line += " -x"
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

// fishEscape escapes text for a single-quoted fish string.
func fishEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}

func commandNames() []string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}
	return names
}
