package logging

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette - keeping it minimal and accessible.
var (
	colorSuccess = lipgloss.Color("34")  // Green
	colorError   = lipgloss.Color("196") // Red
)

// colorEnabled reports whether styled output should be produced.
//
// Styling is disabled when:
//   - stderr is not a terminal (piped output, CI logs)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - CI=true is set (common CI/CD convention)
func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") == "true" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

func passStyle() lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	if !colorEnabled() {
		return lipgloss.NewStyle()
	}
	return s
}

func failStyle() lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true).Foreground(colorError)
	if !colorEnabled() {
		return lipgloss.NewStyle()
	}
	return s
}

func errorStyle() lipgloss.Style {
	return failStyle()
}

// PassLine renders a "PASS: ..." result line for stdout.
func PassLine(format string, args ...interface{}) string {
	return passStyle().Render("PASS:") + " " + fmt.Sprintf(format, args...)
}

// FailLine renders a "FAIL: ..." result line for stdout.
func FailLine(format string, args ...interface{}) string {
	return failStyle().Render("FAIL:") + " " + fmt.Sprintf(format, args...)
}

// OKLine renders an "OK: ..." progress line.
func OKLine(format string, args ...interface{}) string {
	return passStyle().Render("OK:") + " " + fmt.Sprintf(format, args...)
}

// ErrorLine renders an "ERROR: ..." line for fatal conditions.
func ErrorLine(format string, args ...interface{}) string {
	return failStyle().Render("ERROR:") + " " + fmt.Sprintf(format, args...)
}
