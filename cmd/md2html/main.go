package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand is returned for a first argument that is neither a
// command nor something convert can read.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	env := DefaultEnv()

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if wantsVerbose(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, env))
}

// runMain dispatches a command and returns the process exit code.
// args includes the program name, as os.Args does.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	err := dispatch(ctx, cmdArgs, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		if errors.Is(err, ErrUnknownCommand) || errors.Is(err, ErrUsage) {
			fmt.Fprintln(env.Stderr)
			printUsage(env.Stderr)
		}
	}
	return exitCodeFor(err)
}

// dispatch routes args to a command; convert is the default.
func dispatch(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		return runConvert(ctx, nil, env)
	}

	switch args[0] {
	case "convert":
		return runConvert(ctx, args[1:], env)
	case "version":
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return nil
	case "styles":
		return runStyles(args[1:], env)
	case "completion":
		return runCompletion(args[1:], env)
	case "help":
		return runHelp(args[1:], env)
	}

	if looksLikeInput(args[0]) {
		return runConvert(ctx, args, env)
	}
	return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
}

// isCommand reports whether name is a known command (case sensitive).
func isCommand(name string) bool {
	switch name {
	case "convert", "version", "styles", "help", "completion":
		return true
	}
	return false
}

// looksLikeInput reports whether arg should be handed to convert rather
// than rejected as a mistyped command: flags, stdin, markdown names,
// anything path-like, or anything that exists on disk.
func looksLikeInput(arg string) bool {
	if arg == stdinMarker || strings.HasPrefix(arg, "-") {
		return true
	}
	if fileutil.IsMarkdownFile(arg) || strings.ContainsAny(arg, `/\`) || filepath.Ext(arg) != "" {
		return true
	}
	_, err := os.Stat(arg)
	return err == nil
}

// runStyles prints the highlight style names, one per line.
func runStyles(args []string, env *Environment) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: styles takes no arguments", ErrUsage)
	}
	for _, name := range md2html.HighlightStyles() {
		fmt.Fprintln(env.Stdout, name)
	}
	return nil
}
