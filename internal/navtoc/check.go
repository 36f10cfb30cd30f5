package navtoc

import (
	tocerrors "github.com/pwwang/gentoc/internal/errors"
)

// Check renders the TOC and confirms every bullet parses back as a markdown
// link to its entry's URL. It reports the first entry that does not.
func (t *TOC) Check() error {
	links := Links(t.String())

	j := 0
	for _, e := range t.Entries {
		if j < len(links) && links[j].Destination == e.URL {
			j++
			continue
		}
		return tocerrors.BrokenLink(e.Line, e.Title, e.URL)
	}
	return nil
}
