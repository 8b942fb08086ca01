// ABOUTME: Text assembly helpers for mixed-content paragraphs
// ABOUTME: Walks direct child nodes so inline markup keeps its visible text

package dle

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// nodeText assembles the visible text of an element from its direct
// children, skipping the named child elements. The site intermixes plain
// text with inline markup (links, marks, italics), so plain text nodes and
// the text of non-skipped elements are concatenated in document order.
// The result is trimmed; whitespace-only content comes back empty.
func nodeText(sel *goquery.Selection, skip ...string) string {
	var b strings.Builder
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		node := c.Get(0)
		switch node.Type {
		case html.TextNode:
			b.WriteString(node.Data)
		case html.ElementNode:
			for _, name := range skip {
				if node.Data == name {
					return
				}
			}
			b.WriteString(c.Text())
		}
	})
	return strings.TrimSpace(b.String())
}

// firstClassToken returns the lowercased first token of the element's
// class attribute, or the empty string when it has none.
func firstClassToken(sel *goquery.Selection) string {
	class := strings.TrimSpace(sel.AttrOr("class", ""))
	if class == "" {
		return ""
	}
	return strings.ToLower(strings.Fields(class)[0])
}

// classLetter returns the first byte of the element's first class token.
// The dictionary markup encodes block roles in that letter (j for senses,
// k for phrase headers, m for phrase senses, n for notes, l for
// cross-references).
func classLetter(sel *goquery.Selection) byte {
	token := firstClassToken(sel)
	if token == "" {
		return 0
	}
	return token[0]
}
