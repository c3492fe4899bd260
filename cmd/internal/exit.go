package internal

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var fatalColor = color.New(color.FgRed, color.Bold)

// Fatal will emit the message highlighted as an error and os.Exit with code 1.
func Fatal(msg string, args ...any) {
	_, _ = fatalColor.Fprintf(os.Stderr, withNewline(msg), args...)
	os.Exit(1)
}

// Echo will emit the given message without any logging formatting.
func Echo(msg string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, withNewline(msg), args...)
}

func withNewline(msg string) string {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	return msg
}
