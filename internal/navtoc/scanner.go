package navtoc

import (
	"strings"
)

// scanState is the position of the scanner relative to the nav block.
type scanState int

const (
	stateBefore scanState = iota
	stateInNav
)

// lineKind is the classification of a line after it has driven a transition.
type lineKind int

const (
	lineOther lineKind = iota
	lineNavHeader
	lineDedent
	lineEntry
)

// scanner is the single-pass state machine over configuration lines.
// Lines keep their terminator, so a blank line is "\n" and counts as a
// dedent.
type scanner struct {
	state scanState
	// indent is fixed once, by the first indented line inside a nav block,
	// and is kept for the rest of the document.
	indent    string
	indentSet bool
}

func (s *scanner) step(line string) lineKind {
	switch {
	case strings.TrimSpace(line) == navHeader:
		s.state = stateInNav
		return lineNavHeader
	case !isIndented(line):
		s.state = stateBefore
		return lineDedent
	case s.state == stateInNav && !s.indentSet:
		s.indent, _, _ = strings.Cut(line, "-")
		s.indentSet = true
	}

	if s.state == stateInNav && s.indentSet && strings.HasPrefix(line, s.indent+"-") {
		return lineEntry
	}
	return lineOther
}

func isIndented(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}

// splitEntry splits an entry line into its title and page path on the first
// ':' and strips whitespace and quote characters from both halves.
func splitEntry(line, indent string) (title, pagePath string, ok bool) {
	rest := strings.TrimSpace(line[len(indent)+1:])
	title, pagePath, ok = strings.Cut(rest, ":")
	if !ok {
		return "", "", false
	}
	return trimField(title), trimField(pagePath), true
}

func trimField(s string) string {
	return strings.Trim(strings.TrimSpace(s), `'"`)
}
