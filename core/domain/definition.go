// ABOUTME: Definition and Abbreviation domain models for dictionary senses
// ABOUTME: A definition is one numbered meaning within an article

package domain

import "strings"

// verbTenseAbbrs mark non-finite or tense-specific verb senses in the
// category abbreviation
var verbTenseAbbrs = []string{"part.", "ger.", "pret.", "fut.", "pres.", "infinit."}

// Abbreviation pairs the short form shown on the page with the expanded
// text the site keeps in the element's title attribute
type Abbreviation struct {
	// Abbr is the short form as it appears in the source
	Abbr string

	// Text is the expanded human-readable form
	Text string
}

// Definition represents one numbered sense of an article or complex form
type Definition struct {
	// ID is the identifier carried by the sense paragraph, when present
	ID string

	// Index is the 1-based sense number
	Index int

	// Category is the grammatical category of the sense; nil when the
	// sense has none
	Category *Abbreviation

	// FirstOfCategory reports that this sense opens a block of senses
	// sharing its grammatical category
	FirstOfCategory bool

	// Abbreviations holds the usage notes attached to the sense
	Abbreviations []Abbreviation

	// Sentence is the definition body text
	Sentence string

	// Examples holds usage examples, in document order
	Examples []string
}

// IsAdjective reports whether the sense is an adjective
func (d *Definition) IsAdjective() bool {
	return d.Category != nil && d.Category.Abbr == "adj."
}

// IsAdverb reports whether the sense is an adverb
func (d *Definition) IsAdverb() bool {
	return d.Category != nil && d.Category.Abbr == "adv."
}

// IsNoun reports whether the sense is a noun
func (d *Definition) IsNoun() bool {
	if d.Category == nil {
		return false
	}
	return d.Category.Abbr == "s." || d.Category.Abbr == "sust."
}

// IsPronoun reports whether the sense is a pronoun
func (d *Definition) IsPronoun() bool {
	return d.Category != nil && d.Category.Abbr == "pron."
}

// IsVerb reports whether the sense is a verb form, either because the
// expanded category names a verb or because the abbreviation carries a
// tense marker
func (d *Definition) IsVerb() bool {
	if d.Category == nil {
		return false
	}
	if strings.Contains(strings.ToLower(d.Category.Text), "verbo") {
		return true
	}
	for _, marker := range verbTenseAbbrs {
		if strings.Contains(d.Category.Abbr, marker) {
			return true
		}
	}
	return false
}
