package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aki/githelper/internal/core/repo"
)

// Writers used by the print helpers. Commands serving MCP over stdio point
// Stdout at stderr so nothing but protocol traffic reaches stdout.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Error(format string, args ...interface{}) {
	fmt.Fprintf(Stderr, "%s %s\n", ErrorIcon, ErrorStyle.Render(fmt.Sprintf(format, args...)))
}

func Success(format string, args ...interface{}) {
	fmt.Fprintf(Stdout, "%s %s\n", SuccessIcon, SuccessStyle.Render(fmt.Sprintf(format, args...)))
}

func Info(format string, args ...interface{}) {
	fmt.Fprintf(Stdout, "%s %s\n", InfoIcon, InfoStyle.Render(fmt.Sprintf(format, args...)))
}

func Warning(format string, args ...interface{}) {
	fmt.Fprintf(Stdout, "%s %s\n", WarningIcon, WarningStyle.Render(fmt.Sprintf(format, args...)))
}

// OutputLine prints an unstyled line
func OutputLine(format string, args ...interface{}) {
	fmt.Fprintf(Stdout, format+"\n", args...)
}

// Separator prints a rule of width characters
func Separator(width int) {
	OutputLine("%s", strings.Repeat("=", width))
}

// PrintReport writes an operation report. Error reports go to Stderr.
func PrintReport(report repo.Report) {
	text := report.Text()
	switch report.Kind {
	case repo.KindError:
		fmt.Fprintln(Stderr, ErrorStyle.Render(text))
	case repo.KindNoOp:
		fmt.Fprintln(Stdout, InfoStyle.Render(text))
	default:
		fmt.Fprintln(Stdout, text)
	}
}
