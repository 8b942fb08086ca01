// ABOUTME: ComplexForm and OtherEntry domain models
// ABOUTME: Phrases built on a lemma and cross-references to related lemmas

package domain

// ComplexForm represents a multi-word phrase or idiom built on the lemma,
// listed with its own senses after the main ones
type ComplexForm struct {
	// ID is the identifier carried by the phrase element, when present
	ID string

	// Expression is the phrase headword
	Expression string

	// IsForeign reports that the site renders the phrase in italics
	IsForeign bool

	// SupplementaryInfo holds notes attached to the phrase
	SupplementaryInfo []string

	// Definitions contains the numbered senses of the phrase
	Definitions []Definition
}

// OtherEntry represents a cross-reference to a related lemma
type OtherEntry struct {
	// Text is the referenced form as shown on the page
	Text string

	// Link is the absolute URL resolving the reference, empty when the
	// source gives none
	Link string

	// IsActiveLink reports that the site rendered the reference as a
	// regular hyperlink rather than a click-to-search mark
	IsActiveLink bool
}
