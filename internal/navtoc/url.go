package navtoc

import "errors"

// errShortPath is returned for page paths shorter than the extension.
var errShortPath = errors.New("page path is shorter than its extension")

// PageURL rewrites a relative page path into its published URL by replacing
// the trailing 3-character extension with ".html".
func PageURL(siteURL, pagePath string) (string, error) {
	r := []rune(pagePath)
	if len(r) < extLen {
		return "", errShortPath
	}
	return siteURL + string(r[:len(r)-extLen]) + ".html", nil
}
