// Package ignorefile writes downloaded templates to the local
// ignore file, asking before an existing file is replaced.
package ignorefile

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/mhmorgan/gitignore-cli/utils"
	"github.com/moby/sys/atomicwriter"
	"io"
	"os"
	"strings"
)

type Outcome int

const (
	Written Outcome = iota
	Aborted
)

func (o Outcome) String() string {
	switch o {
	case Written:
		return "Written"
	case Aborted:
		return "Aborted"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

type Writer struct {
	Path string
	In   io.Reader // Answers to the overwrite prompt.
	Out  io.Writer // Where the prompt is printed.
}

// New returns a Writer for path which prompts on the process'
// standard streams.
func New(path string) *Writer {
	return &Writer{Path: path, In: os.Stdin, Out: os.Stdout}
}

// Write replaces the destination with content. If the
// destination exists the user must confirm first, otherwise
// Aborted is returned and the file is left alone.
func (w *Writer) Write(content string) (Outcome, error) {
	exists, err := utils.PathExists(w.Path)
	if err != nil {
		return 0, &IoError{Op: "stat", Path: w.Path, Err: err}
	}
	if exists {
		ok, err := w.confirm()
		if err != nil {
			return 0, err
		}
		if !ok {
			return Aborted, nil
		}
	}

	if err := atomicwriter.WriteFile(w.Path, []byte(content), 0644); err != nil {
		return 0, &IoError{Op: "write", Path: w.Path, Err: err}
	}
	return Written, nil
}

func (w *Writer) confirm() (bool, error) {
	if _, err := fmt.Fprintf(w.Out, "%s already exists. Overwrite? (y/N): ", w.Path); err != nil {
		return false, &IoError{Op: "prompt", Path: w.Path, Err: err}
	}
	line, err := bufio.NewReader(w.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, &IoError{Op: "read answer", Path: w.Path, Err: err}
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return strings.HasPrefix(answer, "y"), nil
}
