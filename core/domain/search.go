// ABOUTME: SearchResult domain model for a parsed dictionary results page
// ABOUTME: Holds the page title and the articles extracted in document order

package domain

// SearchResult represents one parsed dictionary results page
type SearchResult struct {
	// Title is the page title, stored as extracted
	Title string

	// Canonical is the href of the page's canonical link, empty when absent
	Canonical string

	// MetaDescription is the content of the page's description meta tag,
	// empty when absent
	MetaDescription string

	// Articles contains the dictionary articles in document order; the
	// order is meaningful for disambiguation between homographs
	Articles []Article
}
