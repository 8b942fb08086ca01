// ABOUTME: HTML parser for dictionary result pages
// ABOUTME: Walks the document tree and assembles the typed search result

// Package dle parses result pages of the Diccionario de la lengua española
// into typed records. Parsing is a pure function of the page text: no
// network access, no caching, and the same input always yields the same
// result or the same error.
package dle

import (
	"strings"

	"dle-app-api/core/domain"
	"dle-app-api/core/errors"
	"github.com/PuerkitoBio/goquery"
)

// Stats counts the per-item recoverable drops observed during a parse.
// None of these abort the parse; the lookup service logs them at debug
// level so format drift on the site stays visible.
type Stats struct {
	// SkippedDefinitions counts senses with a malformed or missing number
	SkippedDefinitions int

	// DroppedDefinitions counts senses whose body had no text
	DroppedDefinitions int

	// DuplicateIndexes counts senses whose number did not increase within
	// their list
	DuplicateIndexes int

	// DroppedAbbreviations counts abbr elements without an expansion
	DroppedAbbreviations int

	// SkippedOtherEntries counts cross-reference paragraphs in none of the
	// known renderings
	SkippedOtherEntries int

	// StrayDefinitions counts phrase senses appearing before any phrase
	// header
	StrayDefinitions int
}

// Fields returns the stats as structured logging fields
func (s Stats) Fields() map[string]interface{} {
	return map[string]interface{}{
		"skipped_definitions":   s.SkippedDefinitions,
		"dropped_definitions":   s.DroppedDefinitions,
		"duplicate_indexes":     s.DuplicateIndexes,
		"dropped_abbreviations": s.DroppedAbbreviations,
		"skipped_other_entries": s.SkippedOtherEntries,
		"stray_definitions":     s.StrayDefinitions,
	}
}

// Total returns the number of items dropped for any reason
func (s Stats) Total() int {
	return s.SkippedDefinitions + s.DroppedDefinitions + s.DuplicateIndexes +
		s.DroppedAbbreviations + s.SkippedOtherEntries + s.StrayDefinitions
}

// Parse converts one result page into a SearchResult. It fails with a
// ParseError when the document lacks the expected structure and with a
// NotFoundError when the page is a valid no-match page; the two outcomes
// are distinguishable with errors.IsParse and errors.IsNotFound.
func Parse(html string) (*domain.SearchResult, error) {
	result, _, err := ParseWithStats(html)
	return result, err
}

// ParseWithStats is Parse with the per-item drop counts exposed
func ParseWithStats(html string) (*domain.SearchResult, Stats, error) {
	var stats Stats

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, stats, &errors.ParseError{Reason: "unreadable document: " + err.Error()}
	}

	// Every valid response, found or not, carries a title.
	title := doc.Find("title")
	if title.Length() == 0 {
		return nil, stats, &errors.ParseError{Reason: "document has no title element"}
	}

	result := &domain.SearchResult{
		Title:           strings.TrimSpace(title.First().Text()),
		Canonical:       doc.Find("link[rel='canonical']").AttrOr("href", ""),
		MetaDescription: doc.Find("meta[name='description']").AttrOr("content", ""),
		Articles:        []domain.Article{},
	}

	results := doc.Find("div#resultados").First()
	if results.Length() == 0 {
		return nil, stats, &errors.ParseError{Reason: "results container not found"}
	}

	articles := results.ChildrenFiltered("article")
	if articles.Length() == 0 {
		// The no-match page lists related entries in n1 blocks where
		// articles would be. That marker distinguishes a genuine miss
		// from an unexpected page shape.
		if results.ChildrenFiltered("div.n1").Length() > 0 {
			return nil, stats, &errors.NotFoundError{Title: result.Title}
		}
		return nil, stats, &errors.ParseError{Reason: "results container has no articles and no related-entries marker"}
	}

	var parseErr error
	articles.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		article, err := parseArticle(sel, &stats)
		if err != nil {
			parseErr = err
			return false
		}
		result.Articles = append(result.Articles, article)
		return true
	})
	if parseErr != nil {
		return nil, stats, parseErr
	}

	return result, stats, nil
}

// parseArticle walks the direct children of an article element and
// dispatches them on tag name and class letter, the way the site lays out
// its blocks: the f-class header carries the lemma, j paragraphs the
// senses, k paragraphs open complex forms with their m senses, n
// paragraphs hold notes, and l paragraphs cross-references.
func parseArticle(sel *goquery.Selection, stats *Stats) (domain.Article, error) {
	article := domain.Article{
		ID:                sel.AttrOr("id", ""),
		SupplementaryInfo: []string{},
		Definitions:       []domain.Definition{},
		ComplexForms:      []domain.ComplexForm{},
		OtherEntries:      []domain.OtherEntry{},
	}

	haveLemma := false
	lastIndex := 0
	openForm := -1
	formLastIndex := 0

	sel.Children().Each(func(_ int, child *goquery.Selection) {
		name := goquery.NodeName(child)
		if !haveLemma && name == "header" && classLetter(child) == 'f' {
			article.Lemma = parseLemma(child)
			haveLemma = true
			return
		}
		if name != "p" {
			return
		}

		switch classLetter(child) {
		case 'j':
			def, ok := parseDefinition(child, stats)
			if !ok {
				return
			}
			if def.Index <= lastIndex {
				stats.DuplicateIndexes++
				return
			}
			lastIndex = def.Index
			article.Definitions = append(article.Definitions, def)

		case 'k':
			article.ComplexForms = append(article.ComplexForms, parseComplexFormHeader(child))
			openForm = len(article.ComplexForms) - 1
			formLastIndex = 0

		case 'm':
			if openForm < 0 {
				stats.StrayDefinitions++
				return
			}
			def, ok := parseDefinition(child, stats)
			if !ok {
				return
			}
			if def.Index <= formLastIndex {
				stats.DuplicateIndexes++
				return
			}
			formLastIndex = def.Index
			form := &article.ComplexForms[openForm]
			form.Definitions = append(form.Definitions, def)

		case 'n':
			note := nodeText(child)
			if note == "" {
				return
			}
			// Notes attach to the open complex form when one exists.
			if openForm >= 0 {
				form := &article.ComplexForms[openForm]
				form.SupplementaryInfo = append(form.SupplementaryInfo, note)
				return
			}
			article.SupplementaryInfo = append(article.SupplementaryInfo, note)

		case 'l':
			entry, ok := parseOtherEntry(child, article.ID)
			if !ok {
				stats.SkippedOtherEntries++
				return
			}
			article.OtherEntries = append(article.OtherEntries, entry)
		}
	})

	if !haveLemma {
		return article, &errors.ParseError{Reason: "article " + article.ID + " has no lemma header"}
	}
	return article, nil
}
