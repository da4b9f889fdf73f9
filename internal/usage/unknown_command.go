package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when a command is not recognized.
// Optional suggestions are appended as "did you mean" hints.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("psel: '%s' is not a psel command. See 'psel --help'.", command)

	if len(suggestions) > 0 {
		var b strings.Builder
		b.WriteString(msg)
		b.WriteString("\n\nThe most similar command")
		if len(suggestions) > 1 {
			b.WriteString("s are")
		} else {
			b.WriteString(" is")
		}
		for _, s := range suggestions {
			b.WriteString("\n\t")
			b.WriteString(s)
		}
		msg = b.String()
	}

	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}
