package navtoc

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	tocerrors "github.com/pwwang/gentoc/internal/errors"
	"github.com/pwwang/gentoc/internal/logfields"
)

const readerName = "<reader>"

// Extract reads the configuration document at path and returns its TOC
// lines: the header, a blank line, then one bullet per nav entry.
func Extract(path string, opts Options) ([]string, error) {
	toc, err := Load(path, opts)
	if err != nil {
		return nil, err
	}
	return toc.Lines, nil
}

// Load reads the configuration document at path and builds its TOC.
func Load(path string, opts Options) (*TOC, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, tocerrors.InputUnavailable(path, err)
	}
	defer file.Close()

	return parse(file, path, opts)
}

// Parse builds a TOC from a configuration document read from r.
func Parse(r io.Reader, opts Options) (*TOC, error) {
	return parse(r, readerName, opts)
}

func parse(r io.Reader, name string, opts Options) (*TOC, error) {
	opts = opts.withDefaults()
	log := opts.Logger.With(logfields.File(name))

	toc := &TOC{Lines: []string{opts.Header, ""}}
	var sc scanner

	br := bufio.NewReader(r)
	for lineNum := 1; ; lineNum++ {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, tocerrors.InputUnavailable(name, readErr)
		}
		if line == "" && readErr != nil {
			break
		}

		kind := sc.step(line)
		if kind == lineNavHeader {
			log.Debug("nav block opened", logfields.Line(lineNum))
		}
		if kind == lineEntry {
			if err := toc.add(line, lineNum, sc.indent, opts, log); err != nil {
				return nil, err
			}
		}

		if readErr != nil {
			break
		}
	}

	log.Debug("toc generated",
		logfields.Entries(len(toc.Entries)),
		logfields.Skipped(toc.Skipped),
		logfields.Indent(sc.indent))
	return toc, nil
}

// add turns one entry line into a bullet, or records why it could not.
func (t *TOC) add(line string, lineNum int, indent string, opts Options, log *slog.Logger) error {
	title, pagePath, ok := splitEntry(line, indent)
	if !ok {
		return t.malformed(line, lineNum, "missing ':' separator", opts, log)
	}
	if opts.skips(title) {
		t.Skipped++
		log.Debug("nav entry skipped", logfields.Line(lineNum), logfields.Title(title))
		return nil
	}

	url, err := PageURL(opts.SiteURL, pagePath)
	if err != nil {
		return t.malformed(line, lineNum, err.Error(), opts, log)
	}

	t.Entries = append(t.Entries, NavEntry{Title: title, PagePath: pagePath, URL: url, Line: lineNum})
	t.Lines = append(t.Lines, FormatEntry(title, url))
	log.Debug("nav entry added", logfields.Line(lineNum), logfields.Title(title), logfields.Path(pagePath), logfields.URL(url))
	return nil
}

func (t *TOC) malformed(line string, lineNum int, reason string, opts Options, log *slog.Logger) error {
	text := strings.TrimRight(line, "\r\n")
	if opts.Strict {
		return tocerrors.MalformedEntry(lineNum, text, reason)
	}
	t.Malformed++
	log.Warn("skipping malformed nav entry", logfields.Line(lineNum), logfields.Reason(reason))
	return nil
}
