package errors

// InputUnavailable reports that the configuration document could not be
// opened or read.
func InputUnavailable(path string, cause error) *TocError {
	return Wrap(cause, CategoryInput, "configuration document unavailable").
		WithContext("path", path)
}

// MalformedEntry reports a nav entry that cannot be split into a title and a
// page path.
func MalformedEntry(line int, text, reason string) *TocError {
	return New(CategoryParse, "malformed nav entry").
		WithContext("line", line).
		WithContext("text", text).
		WithContext("reason", reason)
}

// InvalidConfig reports a generator setting that failed validation.
func InvalidConfig(field, reason string) *TocError {
	return New(CategoryConfig, "invalid configuration").
		WithContext("field", field).
		WithContext("reason", reason)
}

// ConfigLoadFailed reports a settings file that exists but cannot be used.
func ConfigLoadFailed(path string, cause error) *TocError {
	return Wrap(cause, CategoryConfig, "failed to load settings").
		WithContext("path", path)
}

// IsInputUnavailable reports whether err is an input error.
func IsInputUnavailable(err error) bool { return IsCategory(err, CategoryInput) }

// IsMalformedEntry reports whether err is a nav entry parse error.
func IsMalformedEntry(err error) bool { return IsCategory(err, CategoryParse) }

// BrokenLink reports a generated bullet that does not parse as a markdown
// link.
func BrokenLink(line int, title, url string) *TocError {
	return New(CategoryParse, "generated bullet is not a valid markdown link").
		WithContext("line", line).
		WithContext("title", title).
		WithContext("url", url)
}
