// Package output renders wallet session results for the Arcon CLI in
// text or JSON form.
package output

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

// Output format constants.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatAuto Format = "auto"
)

// Formatter holds the resolved output format for a CLI invocation.
// Commands branch on it to decide between table/text rendering and
// machine-readable JSON.
type Formatter struct {
	format Format
}

// NewFormatter creates a formatter for the given resolved format.
// Resolve FormatAuto through DetectFormat first.
func NewFormatter(format Format) *Formatter {
	return &Formatter{format: format}
}

// Format returns the resolved output format.
func (f *Formatter) Format() Format {
	return f.format
}

// IsJSON returns true when output goes to a machine consumer.
func (f *Formatter) IsJSON() bool {
	return f.format == FormatJSON
}

// DetectFormat resolves FormatAuto: text when the writer is a TTY, JSON
// otherwise, so piped output stays parseable. An explicit format wins.
func DetectFormat(w io.Writer, explicit Format) Format {
	if explicit != FormatAuto {
		return explicit
	}

	if f, ok := w.(*os.File); ok {
		if term.IsTerminal(int(f.Fd())) { //nolint:gosec // G115: Fd() returns uintptr, safe conversion for term.IsTerminal
			return FormatText
		}
	}

	return FormatJSON
}

// ParseFormat parses a format string.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatAuto
	}
}
