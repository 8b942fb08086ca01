// ABOUTME: Entry URL construction for the online dictionary
// ABOUTME: Builds per-word lookup URLs under the public site address

package dle

import (
	"net/url"
	"strings"
)

// DefaultBaseURL is the public address of the Diccionario de la lengua
// española. Cross-reference links in parsed results resolve against it.
const DefaultBaseURL = "https://dle.rae.es"

// EntryURL builds the lookup URL for a word under the given base address.
// The word may be any non-empty Unicode text; it is path-escaped as a
// single segment.
func EntryURL(base, word string) string {
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(word)
}
