package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// Success prints a message in green with a checkmark prefix.
func Success(w io.Writer, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	_, _ = green.Fprint(w, msg)
}

// Warning prints a message in yellow with a warning prefix.
func Warning(w io.Writer, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "!") {
		msg = "! " + msg
	}
	_, _ = yellow.Fprint(w, msg)
}

// Field prints an aligned "key: value" line with the key highlighted.
func Field(w io.Writer, key, value string) {
	_, _ = cyan.Fprintf(w, "%-10s", key+":")
	_, _ = fmt.Fprintf(w, " %s\n", value)
}

// Error prints a titled error with an explanation and suggestions to w and
// returns an error carrying only the title, for commands that silence
// cobra's own error output.
func Error(w io.Writer, title, explanation string, suggestions []string) error {
	_, _ = red.Fprintf(w, "%s\n", title)
	if explanation != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", explanation)
	}

	switch len(suggestions) {
	case 0:
	case 1:
		_, _ = fmt.Fprintf(w, "\n%s\n", suggestions[0])
	default:
		_, _ = fmt.Fprintf(w, "\nEither:\n")
		for i, suggestion := range suggestions {
			_, _ = fmt.Fprintf(w, "  %d. %s\n", i+1, suggestion)
		}
	}

	return fmt.Errorf("%s", title)
}
