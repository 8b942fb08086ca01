// ABOUTME: HTML utilities for reducing markup fragments to plain text
// ABOUTME: Used for feed summaries that embed dictionary markup

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML reduces an HTML fragment to its visible text. Entities are
// decoded, script and style content is discarded, and runs of whitespace
// collapse to single spaces.
func StripHTML(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}

	doc.Find("script, style").Remove()

	return strings.Join(strings.Fields(doc.Text()), " ")
}
