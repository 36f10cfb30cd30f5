// Package logfields holds the canonical slog attribute keys used by gentoc.
package logfields

import (
	"log/slog"
	"strconv"
)

const (
	KeyFile    = "file"
	KeyLine    = "line"
	KeyTitle   = "title"
	KeyPath    = "path"
	KeyURL     = "url"
	KeyEntries = "entries"
	KeySkipped = "skipped"
	KeyIndent  = "indent"
	KeyReason  = "reason"
)

func File(f string) slog.Attr   { return slog.String(KeyFile, f) }
func Line(n int) slog.Attr      { return slog.Int(KeyLine, n) }
func Title(t string) slog.Attr  { return slog.String(KeyTitle, t) }
func Path(p string) slog.Attr   { return slog.String(KeyPath, p) }
func URL(u string) slog.Attr    { return slog.String(KeyURL, u) }
func Entries(n int) slog.Attr   { return slog.Int(KeyEntries, n) }
func Skipped(n int) slog.Attr   { return slog.Int(KeySkipped, n) }
func Reason(r string) slog.Attr { return slog.String(KeyReason, r) }

// Indent quotes the prefix so tabs and spaces stay visible in text logs.
func Indent(prefix string) slog.Attr { return slog.String(KeyIndent, strconv.Quote(prefix)) }
