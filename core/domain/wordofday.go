package domain

import "time"

// WordOfDay is the dictionary's featured word for a date
type WordOfDay struct {
	// Word is the featured headword
	Word string

	// Link points at the word's entry page
	Link string

	// Summary is the feed's blurb for the word, reduced to plain text
	Summary string

	// Date is the feed item's publication time, zero when the feed
	// carries none
	Date time.Time
}
