package main

import (
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now             func() time.Time
	Stdin           io.Reader
	Stdout          io.Writer
	Stderr          io.Writer
	StdinIsTerminal func() bool
	Getenv          func(string) string
	Environ         func() []string
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		StdinIsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) // #nosec G115 -- file descriptors fit in int
		},
		Getenv:  os.Getenv,
		Environ: os.Environ,
	}
}
