// ABOUTME: Headword block parsing for articles
// ABOUTME: Splits header text into lemma, homograph index, and feminine suffix

package dle

import (
	"regexp"
	"strings"

	"dle-app-api/core/domain"
	"dle-app-api/pkg/utils/parse"
	"github.com/PuerkitoBio/goquery"
)

// headwordRe matches the usual shape of an article header: the headword,
// an optional homograph index, an optional feminine suffix after a comma,
// and an optional parenthesized variant. Headers that do not match (for
// example hyphenated affixes or multi-word forms) keep their whole text as
// the lemma.
var headwordRe = regexp.MustCompile(`^(\p{L}+)(\d+)?(?:,\s+(\p{L}+))?(?:\s+\((\p{L}+)\))?$`)

// parseLemma interprets the header element of an article
func parseLemma(header *goquery.Selection) domain.Lemma {
	raw := strings.TrimSpace(header.Text())
	lemma := domain.Lemma{
		ID:        header.AttrOr("id", ""),
		Lema:      raw,
		IsForeign: header.Find("i").Length() > 0,
	}

	m := headwordRe.FindStringSubmatch(raw)
	if m == nil {
		return lemma
	}

	lemma.Lema = m[1]
	lemma.Index = parse.IntOrZero(m[2])
	lemma.FemaleSuffix = m[3]
	return lemma
}

// parseComplexFormHeader interprets a phrase header paragraph, opening a
// new complex form
func parseComplexFormHeader(p *goquery.Selection) domain.ComplexForm {
	return domain.ComplexForm{
		ID:                p.AttrOr("id", ""),
		Expression:        strings.TrimSpace(p.Text()),
		IsForeign:         p.Find("i").Length() > 0,
		SupplementaryInfo: []string{},
		Definitions:       []domain.Definition{},
	}
}
