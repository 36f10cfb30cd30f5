// Package ui renders gentoc diagnostics for the terminal. Standard output is
// reserved for the TOC, so everything here is written to stderr by callers.
package ui

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	tocerrors "github.com/pwwang/gentoc/internal/errors"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	// boxStyle for the --check summary
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1)
)

// Summary describes one generator run for FormatSummary.
type Summary struct {
	Source    string
	Entries   int
	Skipped   int
	Malformed int
	Links     int
}

// OK reports whether every emitted entry came back as a link.
func (s Summary) OK() bool {
	return s.Links == s.Entries
}

// FormatSummary renders the run summary box.
func FormatSummary(w io.Writer, s Summary) {
	var status string
	if s.OK() {
		status = successStyle.Render("OK")
	} else {
		status = errorStyle.Render("BROKEN LINKS")
	}

	malformed := fmt.Sprintf("%d", s.Malformed)
	if s.Malformed > 0 {
		malformed = warnStyle.Render(malformed)
	}

	line1 := fmt.Sprintf("%s %s", dimStyle.Render("Source:"), s.Source)
	line2 := fmt.Sprintf("%s %d  %s %d  %s %s",
		dimStyle.Render("Entries:"), s.Entries,
		dimStyle.Render("Skipped:"), s.Skipped,
		dimStyle.Render("Malformed:"), malformed,
	)
	line3 := fmt.Sprintf("%s %d  %s", dimStyle.Render("Links:"), s.Links, status)

	content := titleStyle.Render("Table of Contents") + "\n" + line1 + "\n" + line2 + "\n" + line3
	fmt.Fprintln(w, boxStyle.Render(content))
}

// FormatError renders a failure with any structured context on its own
// lines, sorted by key.
func FormatError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", errorStyle.Render("Error:"), err.Error())

	var te *tocerrors.TocError
	if !errors.As(err, &te) || len(te.Context) == 0 {
		return
	}

	keys := make([]string, 0, len(te.Context))
	for k := range te.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "  %s %v\n", dimStyle.Render(k+":"), te.Context[k])
	}
	fmt.Fprint(w, sb.String())
}
