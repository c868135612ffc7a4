package view

import (
	"net/url"
)

// LibraryURL returns the library page for lang, keeping the search query if there is one
func LibraryURL(lang, search string) string {
	u := "/" + lang
	if search != "" {
		u += "?" + url.Values{"search": {search}}.Encode()
	}
	return u
}
