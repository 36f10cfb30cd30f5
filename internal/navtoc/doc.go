// Package navtoc turns the nav section of an mkdocs-style configuration file
// into a markdown table of contents pointing at the published site.
//
// # Overview
//
// The configuration is scanned once, line by line. A line whose trimmed
// content is exactly "nav:" opens the nav block; the first indented line
// after it fixes the indentation prefix (everything before its first '-').
// Every later line that starts with that prefix followed by '-' is a nav
// entry of the form "title: path/to/page.md". Any line starting at column
// zero closes the block, blank lines and comments included.
//
// Entries are rewritten to "- [title](<site>/path/to/page.html)". The title
// and path are split on the first ':' of the entry, so a quoted title that
// itself contains a colon is split inside the quotes.
//
// # Usage
//
//	opts := navtoc.DefaultOptions()
//	toc, err := navtoc.Load("mkdocs.yml", opts)
//	if err != nil {
//		return err
//	}
//	fmt.Print(toc.String())
package navtoc
