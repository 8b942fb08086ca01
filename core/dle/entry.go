// ABOUTME: Cross-reference paragraph parsing
// ABOUTME: Resolves mark, anchor, and span renderings of related lemmas

package dle

import (
	"strings"

	"dle-app-api/core/domain"
	"github.com/PuerkitoBio/goquery"
)

// parseOtherEntry reads an l-class paragraph. The site renders a
// cross-reference one of three ways: a mark element carrying a data-id, a
// regular hyperlink, or a plain u-class span. A paragraph with none of the
// three, or with whitespace-only text, is skipped.
func parseOtherEntry(p *goquery.Selection, articleID string) (domain.OtherEntry, bool) {
	if mark := p.Find("mark").First(); mark.Length() > 0 {
		if dataID, ok := mark.Attr("data-id"); ok {
			text := strings.TrimSpace(mark.Text())
			if text == "" {
				return domain.OtherEntry{}, false
			}
			return domain.OtherEntry{
				Text: text,
				Link: DefaultBaseURL + "/?id=" + dataID,
			}, true
		}
	}

	if a := p.Find("a").First(); a.Length() > 0 {
		text := strings.TrimSpace(a.Text())
		if text == "" {
			return domain.OtherEntry{}, false
		}
		entry := domain.OtherEntry{Text: text, IsActiveLink: true}
		if href := a.AttrOr("href", ""); href != "" {
			// Relative targets resolve under the owning article's id.
			if !strings.HasPrefix(href, "/") {
				href = "/" + articleID + href
			}
			entry.Link = DefaultBaseURL + href
		}
		return entry, true
	}

	if span := p.Find("span.u").First(); span.Length() > 0 {
		text := strings.TrimSpace(span.Text())
		if text == "" {
			return domain.OtherEntry{}, false
		}
		return domain.OtherEntry{Text: text}, true
	}

	return domain.OtherEntry{}, false
}
