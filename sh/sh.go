package sh

import (
	"bytes"
	"fmt"
	"github.com/commander-cli/cmd"
)

// Exec runs a shell command and returns the stdout and stderr
// combined into a single buffer, along with the exit code.
//
// A non-zero exit code is not an error; err is only set if the
// command could not be run at all.
func Exec(s string) (b bytes.Buffer, code int, err error) {
	c := cmd.NewCommand(s, cmd.WithCustomStdout(&b), cmd.WithCustomStderr(&b))
	err = c.Execute()
	code = c.ExitCode()
	return
}

// Execf runs a shell command and returns the stdout and stderr
// combined into a single buffer.
func Execf(format string, a ...interface{}) (bytes.Buffer, int, error) {
	return Exec(fmt.Sprintf(format, a...))
}
