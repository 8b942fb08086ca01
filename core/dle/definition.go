// ABOUTME: Sense paragraph parsing for articles and complex forms
// ABOUTME: Extracts sense number, category, usage notes, body, and examples

package dle

import (
	"regexp"
	"strconv"
	"strings"

	"dle-app-api/core/domain"
	"github.com/PuerkitoBio/goquery"
)

// senseNumberRe matches the leading sense number of a definition
// paragraph, for example "1." or "12.".
var senseNumberRe = regexp.MustCompile(`^(\d+)\.`)

// parseDefinition extracts one sense from a j- or m-class paragraph. It
// returns false when the sense must be left out of the result: a malformed
// or missing sense number, or a body with no text, drop the whole
// definition while the rest of the article continues.
func parseDefinition(p *goquery.Selection, stats *Stats) (domain.Definition, bool) {
	def := domain.Definition{
		ID:            p.AttrOr("id", ""),
		Abbreviations: []domain.Abbreviation{},
		Examples:      []string{},
	}

	indexParsed := false
	categorySeen := false
	p.Children().Each(func(_ int, child *goquery.Selection) {
		switch goquery.NodeName(child) {
		case "span":
			switch firstClassToken(child) {
			case "n_acep":
				m := senseNumberRe.FindStringSubmatch(strings.TrimSpace(child.Text()))
				if m == nil {
					return
				}
				if idx, err := strconv.Atoi(m[1]); err == nil {
					def.Index = idx
					indexParsed = true
				}
			case "h":
				if example := nodeText(child); example != "" {
					def.Examples = append(def.Examples, example)
				}
			}
		case "abbr":
			abbr, ok := parseAbbreviation(child)
			if !categorySeen {
				// The first abbr is the category slot; a malformed one
				// leaves the category absent without promoting the next.
				categorySeen = true
				if ok {
					def.Category = &abbr
					def.FirstOfCategory = firstClassToken(child) == "d"
				} else {
					stats.DroppedAbbreviations++
				}
				return
			}
			if ok {
				def.Abbreviations = append(def.Abbreviations, abbr)
			} else {
				stats.DroppedAbbreviations++
			}
		}
	})

	if !indexParsed {
		stats.SkippedDefinitions++
		return domain.Definition{}, false
	}

	def.Sentence = nodeText(p, "abbr", "span")
	if def.Sentence == "" {
		stats.DroppedDefinitions++
		return domain.Definition{}, false
	}
	return def, true
}

// parseAbbreviation reads an abbr element. The site keeps the expanded
// text in the title attribute; an element without one, or with
// whitespace-only visible text, is malformed and dropped on its own.
func parseAbbreviation(sel *goquery.Selection) (domain.Abbreviation, bool) {
	title, hasTitle := sel.Attr("title")
	short := strings.TrimSpace(sel.Text())
	if !hasTitle || short == "" {
		return domain.Abbreviation{}, false
	}
	return domain.Abbreviation{Abbr: short, Text: strings.TrimSpace(title)}, true
}
