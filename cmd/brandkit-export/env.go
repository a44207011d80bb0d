package main

import (
	"io"
	"os"
	"time"

	"github.com/blockrun/brandkit"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now             func() time.Time
	Stdout          io.Writer
	Stderr          io.Writer
	Root            string       // brand kit directory holding svg/
	CheckRasterizer func() error // startup self-check
}

// DefaultEnv returns the production environment rooted at the working directory.
func DefaultEnv() *Environment {
	return &Environment{
		Now:             time.Now,
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
		Root:            ".",
		CheckRasterizer: brandkit.CheckRasterizer,
	}
}
