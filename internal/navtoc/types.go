package navtoc

import (
	"log/slog"
	"slices"
)

const (
	// DefaultHeader is the first line of every generated TOC.
	DefaultHeader = "## Table of Contents"
	// DefaultSiteURL is the published site page paths are resolved against.
	DefaultSiteURL = "https://pwwang.github.io/datar-blog/"
	// DefaultSkipTitle is the nav title left out of the TOC.
	DefaultSkipTitle = "Home"

	navHeader = "nav:"

	// extLen is the length of the document extension stripped from page
	// paths (".md").
	extLen = 3
)

// NavEntry is a single title/page pair taken from the nav block.
type NavEntry struct {
	Title    string
	PagePath string
	URL      string
	// Line is the 1-based line number in the source document.
	Line int
}

// Options controls how a nav block is turned into TOC lines.
type Options struct {
	// SiteURL is prepended to each rewritten page path. It should end in '/'.
	SiteURL string
	// SkipTitles lists entry titles that produce no TOC line. A nil slice
	// means DefaultSkipTitle; an empty non-nil slice skips nothing.
	SkipTitles []string
	// Header is the first output line.
	Header string
	// Strict makes malformed entries fail the scan instead of being skipped.
	Strict bool
	Logger *slog.Logger
}

// DefaultOptions returns the options that reproduce the stock datar-blog TOC.
func DefaultOptions() Options {
	return Options{
		SiteURL:    DefaultSiteURL,
		SkipTitles: []string{DefaultSkipTitle},
		Header:     DefaultHeader,
	}
}

func (o Options) withDefaults() Options {
	if o.SiteURL == "" {
		o.SiteURL = DefaultSiteURL
	}
	if o.SkipTitles == nil {
		o.SkipTitles = []string{DefaultSkipTitle}
	}
	if o.Header == "" {
		o.Header = DefaultHeader
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

func (o Options) skips(title string) bool {
	return slices.Contains(o.SkipTitles, title)
}

// TOC is the result of scanning one configuration document.
type TOC struct {
	// Lines holds the header, a blank line, then one bullet per entry.
	Lines []string
	// Entries are the nav entries that produced a bullet, in source order.
	Entries []NavEntry
	// Skipped counts entries dropped because of their title.
	Skipped int
	// Malformed counts entry lines ignored in non-strict mode.
	Malformed int
}

// String renders the TOC the way it is printed to standard output.
func (t *TOC) String() string {
	return Render(t.Lines)
}
