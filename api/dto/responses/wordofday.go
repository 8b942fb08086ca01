// ABOUTME: Response DTOs for the word of the day endpoint
// ABOUTME: Carries the featured word and, in extended form, its full entry

package responses

import "time"

// WordOfDayResponse represents the featured word in API responses
type WordOfDayResponse struct {
	Word    string     `json:"word" doc:"Featured headword"`
	Link    string     `json:"link,omitempty" doc:"URL of the word's entry page"`
	Summary string     `json:"summary,omitempty" doc:"Plain-text blurb from the feed"`
	Date    *time.Time `json:"date,omitempty" doc:"Publication date of the feed item"`

	// Extended form only
	Entry *SearchResultResponse `json:"entry,omitempty" doc:"Full dictionary entry for the featured word"`
}
