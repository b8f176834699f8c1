// Package cliutil provides output helpers shared by the oas2ir commands.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/oas2ir/internal/issues"
)

// Writef writes formatted output to the writer.
// If the write fails, it reports the failure on stderr; command output is
// best effort once the conversion has succeeded.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteViolations prints one line per violation followed by a count line.
// Nothing is written when the list is empty.
func WriteViolations(w io.Writer, violations []issues.Issue) {
	if len(violations) == 0 {
		return
	}
	for _, v := range violations {
		Writef(w, "%s\n", v.String())
	}
	noun := "violations"
	if len(violations) == 1 {
		noun = "violation"
	}
	Writef(w, "%d %s\n", len(violations), noun)
}
