// Package fzf lets the user pick a template interactively by
// piping the catalog through an external fzf process.
package fzf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/mhmorgan/gitignore-cli/config"
	"github.com/mhmorgan/gitignore-cli/sh"
	"io"
	"os"
	"os/exec"
	"strings"
)

// CatalogFunc returns the list of names to choose from.
type CatalogFunc func(ctx context.Context) ([]string, error)

type Selector struct {
	Binary string
	Prompt string
	Height string

	Out    io.Writer // Guidance when fzf is missing.
	Stderr io.Writer // fzf draws its interface here.
}

func New(cfg *config.Config) *Selector {
	return &Selector{
		Binary: cfg.Fzf.Binary,
		Prompt: cfg.Fzf.Prompt,
		Height: cfg.Fzf.Height,
		Out:    os.Stdout,
		Stderr: os.Stderr,
	}
}

// Available reports whether the fzf binary can be run.
func (s *Selector) Available() bool {
	_, code, err := sh.Execf("%q --version", s.Binary)
	return err == nil && code == 0
}

// Select lets the user pick one of the names returned by
// catalog. ok is false if fzf is not installed or the user
// made no choice; neither case is an error.
//
// catalog is not called when fzf is unavailable.
func (s *Selector) Select(ctx context.Context, catalog CatalogFunc) (name string, ok bool, err error) {
	if !s.Available() {
		fmt.Fprintln(s.Out, "fzf not found. Install fzf for interactive template selection.")
		fmt.Fprintln(s.Out, "Usage: gitignore <template> or gitignore ls")
		return "", false, nil
	}

	names, err := catalog(ctx)
	if err != nil {
		return "", false, err
	}
	return s.run(ctx, strings.Join(names, "\n"))
}

func (s *Selector) run(ctx context.Context, input string) (string, bool, error) {
	c := exec.CommandContext(ctx, s.Binary, "--prompt="+s.Prompt, "--height="+s.Height)
	var out bytes.Buffer
	c.Stdout = &out
	c.Stderr = s.Stderr

	stdin, err := c.StdinPipe()
	if err != nil {
		return "", false, &ProcessError{Op: "pipe", Err: err}
	}
	if err := c.Start(); err != nil {
		return "", false, &ProcessError{Op: "start", Err: err}
	}

	_, werr := io.WriteString(stdin, input)
	if cerr := stdin.Close(); werr == nil {
		werr = cerr
	}
	if err := c.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Esc, Ctrl-C or no match.
			return "", false, nil
		}
		return "", false, &ProcessError{Op: "wait", Err: err}
	}
	if werr != nil {
		return "", false, &ProcessError{Op: "write", Err: werr}
	}

	selected := strings.TrimSpace(out.String())
	if selected == "" {
		return "", false, nil
	}
	return selected, true, nil
}
