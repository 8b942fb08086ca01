// ABOUTME: Article and Lemma domain models for dictionary entries
// ABOUTME: An article groups every sense and form listed under one headword

package domain

import (
	"strings"
	"unicode"
)

// Article represents one complete dictionary entry for a lemma
type Article struct {
	// ID is the opaque identifier carried by the article element
	ID string

	// Lemma is the headword block of the article
	Lemma Lemma

	// SupplementaryInfo holds etymology and usage notes appearing under
	// the lemma, before any numbered sense
	SupplementaryInfo []string

	// Definitions contains the numbered senses in sense order
	Definitions []Definition

	// ComplexForms contains multi-word phrases built on the lemma
	ComplexForms []ComplexForm

	// OtherEntries contains cross-references to related lemmas
	OtherEntries []OtherEntry
}

// IsVerb reports whether any definition of the article is a verb sense
func (a *Article) IsVerb() bool {
	for i := range a.Definitions {
		if a.Definitions[i].IsVerb() {
			return true
		}
	}
	return false
}

// Lemma represents the headword block of an article
type Lemma struct {
	// ID is the identifier carried by the lemma element, when present
	ID string

	// Lema is the headword. When the header text does not follow the
	// usual headword shape the whole trimmed text is kept here.
	Lema string

	// Index disambiguates homographs; 0 when the lemma is the only one
	Index int

	// FemaleSuffix is the feminine form fragment listed after the
	// headword, empty when there is none
	FemaleSuffix string

	// IsForeign reports that the site renders the headword in italics,
	// marking a borrowed or non-adapted latin form
	IsForeign bool
}

// IsAcronym reports whether the headword is written entirely in uppercase
func (l *Lemma) IsAcronym() bool {
	hasUpper := false
	for _, r := range l.Lema {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// IsPrefix reports whether the headword is a prefix, written with a
// trailing hyphen
func (l *Lemma) IsPrefix() bool {
	return strings.HasSuffix(l.Lema, "-")
}

// IsSuffix reports whether the headword is a suffix, written with a
// leading hyphen
func (l *Lemma) IsSuffix() bool {
	return strings.HasPrefix(l.Lema, "-")
}
