// ABOUTME: Response DTOs for dictionary lookup endpoints
// ABOUTME: Field names, nesting, and order define the public wire format

package responses

// SearchResultResponse represents a parsed dictionary page in API responses
type SearchResultResponse struct {
	Title    string            `json:"title" doc:"Page title of the dictionary entry"`
	Articles []ArticleResponse `json:"articles" doc:"Articles in document order"`

	// Extended form only
	Canonical       string `json:"canonical,omitempty" doc:"Canonical URL of the page"`
	MetaDescription string `json:"meta_description,omitempty" doc:"Meta description of the page"`
}

// ArticleResponse represents one dictionary article in API responses
type ArticleResponse struct {
	ID                string                `json:"id" doc:"Opaque article id from the page markup"`
	Lemma             LemmaResponse         `json:"lemma" doc:"Headword of the article"`
	SupplementaryInfo []string              `json:"supplementary_info" doc:"Etymology and usage notes"`
	Definitions       []DefinitionResponse  `json:"definitions" doc:"Senses in document order"`
	ComplexForms      []ComplexFormResponse `json:"complex_forms" doc:"Idioms and locutions under the article"`
	OtherEntries      []OtherEntryResponse  `json:"other_entries" doc:"Cross-references to related entries"`

	// Extended form only
	IsVerb *bool `json:"is.verb,omitempty" doc:"Whether any sense is a verb sense"`
}

// LemmaResponse represents an article headword in API responses
type LemmaResponse struct {
	Lema         string `json:"lema" doc:"Headword text"`
	Index        int    `json:"index" doc:"Homograph index, 0 when the word has a single article"`
	FemaleSuffix string `json:"female_suffix" doc:"Feminine suffix, empty when the headword has none"`

	// Extended form only
	ID        string `json:"id,omitempty" doc:"Opaque header id from the page markup"`
	IsForeign *bool  `json:"is_foreign,omitempty" doc:"Whether the headword is marked as foreign"`
	IsAcronym *bool  `json:"is_acronym,omitempty" doc:"Whether the headword is an acronym"`
	IsPrefix  *bool  `json:"is_prefix,omitempty" doc:"Whether the headword is a prefix"`
	IsSuffix  *bool  `json:"is_suffix,omitempty" doc:"Whether the headword is a suffix"`
}

// DefinitionResponse represents one sense in API responses
type DefinitionResponse struct {
	Index         int                    `json:"index" doc:"1-based sense number"`
	Category      *AbbreviationResponse  `json:"category,omitempty" doc:"Grammatical category, omitted when the sense has none"`
	Abbreviations []AbbreviationResponse `json:"abbreviations" doc:"Usage notes attached to the sense"`
	Sentence      string                 `json:"sentence" doc:"Definition text"`
	Examples      []string               `json:"examples" doc:"Usage examples"`

	// Extended form only
	ID              string `json:"id,omitempty" doc:"Opaque sense id from the page markup"`
	FirstOfCategory *bool  `json:"first_of_category,omitempty" doc:"Whether this sense opens its category block"`
	IsAdjective     *bool  `json:"is.adjective,omitempty" doc:"Whether the sense is an adjective sense"`
	IsAdverb        *bool  `json:"is.adverb,omitempty" doc:"Whether the sense is an adverb sense"`
	IsNoun          *bool  `json:"is.noun,omitempty" doc:"Whether the sense is a noun sense"`
	IsPronoun       *bool  `json:"is.pronoun,omitempty" doc:"Whether the sense is a pronoun sense"`
	IsVerb          *bool  `json:"is.verb,omitempty" doc:"Whether the sense is a verb sense"`
}

// AbbreviationResponse represents an abbreviation in API responses
type AbbreviationResponse struct {
	Abbr string `json:"abbr" doc:"Abbreviated form"`
	Text string `json:"text" doc:"Expanded form"`
}

// ComplexFormResponse represents an idiom or locution in API responses
type ComplexFormResponse struct {
	Expression        string               `json:"expression" doc:"Phrase headword"`
	SupplementaryInfo []string             `json:"supplementary_info" doc:"Notes attached to the phrase"`
	Definitions       []DefinitionResponse `json:"definitions" doc:"Senses of the phrase"`

	// Extended form only
	ID        string `json:"id,omitempty" doc:"Opaque phrase id from the page markup"`
	IsForeign *bool  `json:"is_foreign,omitempty" doc:"Whether the phrase is marked as foreign"`
}

// OtherEntryResponse represents a cross-reference in API responses
type OtherEntryResponse struct {
	Text string `json:"text" doc:"Text of the cross-reference"`
	Link string `json:"link,omitempty" doc:"Absolute URL of the referenced entry, omitted when the source gives none"`

	// Extended form only
	IsActiveLink *bool `json:"is_active_link,omitempty" doc:"Whether the reference was a hyperlink in the source"`
}
