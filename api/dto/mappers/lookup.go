// ABOUTME: Mappers for converting domain models to lookup API DTOs
// ABOUTME: The extended flag appends supplemental fields to the basic wire form

package mappers

import (
	"dle-app-api/api/dto/responses"
	"dle-app-api/core/domain"
)

// ToSearchResultResponse converts a domain SearchResult to its response DTO.
// The basic form carries exactly the documented fields; extended appends the
// supplemental ones.
func ToSearchResultResponse(result *domain.SearchResult, extended bool) *responses.SearchResultResponse {
	if result == nil {
		return nil
	}

	response := &responses.SearchResultResponse{
		Title:    result.Title,
		Articles: make([]responses.ArticleResponse, 0, len(result.Articles)),
	}

	for i := range result.Articles {
		response.Articles = append(response.Articles, toArticleResponse(&result.Articles[i], extended))
	}

	if extended {
		response.Canonical = result.Canonical
		response.MetaDescription = result.MetaDescription
	}

	return response
}

// ToWordOfDayResponse converts a domain WordOfDay to its response DTO. The
// entry, when present, is attached as-is.
func ToWordOfDayResponse(today *domain.WordOfDay, entry *responses.SearchResultResponse) *responses.WordOfDayResponse {
	if today == nil {
		return nil
	}

	response := &responses.WordOfDayResponse{
		Word:    today.Word,
		Link:    today.Link,
		Summary: today.Summary,
		Entry:   entry,
	}

	if !today.Date.IsZero() {
		date := today.Date
		response.Date = &date
	}

	return response
}

func toArticleResponse(article *domain.Article, extended bool) responses.ArticleResponse {
	response := responses.ArticleResponse{
		ID:                article.ID,
		Lemma:             toLemmaResponse(article.Lemma, extended),
		SupplementaryInfo: stringsOrEmpty(article.SupplementaryInfo),
		Definitions:       make([]responses.DefinitionResponse, 0, len(article.Definitions)),
		ComplexForms:      make([]responses.ComplexFormResponse, 0, len(article.ComplexForms)),
		OtherEntries:      make([]responses.OtherEntryResponse, 0, len(article.OtherEntries)),
	}

	for i := range article.Definitions {
		response.Definitions = append(response.Definitions, toDefinitionResponse(&article.Definitions[i], extended))
	}

	for i := range article.ComplexForms {
		response.ComplexForms = append(response.ComplexForms, toComplexFormResponse(&article.ComplexForms[i], extended))
	}

	for _, entry := range article.OtherEntries {
		response.OtherEntries = append(response.OtherEntries, toOtherEntryResponse(entry, extended))
	}

	if extended {
		response.IsVerb = boolPtr(article.IsVerb())
	}

	return response
}

func toLemmaResponse(lemma domain.Lemma, extended bool) responses.LemmaResponse {
	response := responses.LemmaResponse{
		Lema:         lemma.Lema,
		Index:        lemma.Index,
		FemaleSuffix: lemma.FemaleSuffix,
	}

	if extended {
		response.ID = lemma.ID
		response.IsForeign = boolPtr(lemma.IsForeign)
		response.IsAcronym = boolPtr(lemma.IsAcronym())
		response.IsPrefix = boolPtr(lemma.IsPrefix())
		response.IsSuffix = boolPtr(lemma.IsSuffix())
	}

	return response
}

func toDefinitionResponse(def *domain.Definition, extended bool) responses.DefinitionResponse {
	response := responses.DefinitionResponse{
		Index:         def.Index,
		Abbreviations: make([]responses.AbbreviationResponse, 0, len(def.Abbreviations)),
		Sentence:      def.Sentence,
		Examples:      stringsOrEmpty(def.Examples),
	}

	if def.Category != nil {
		response.Category = &responses.AbbreviationResponse{
			Abbr: def.Category.Abbr,
			Text: def.Category.Text,
		}
	}

	for _, abbr := range def.Abbreviations {
		response.Abbreviations = append(response.Abbreviations, responses.AbbreviationResponse{
			Abbr: abbr.Abbr,
			Text: abbr.Text,
		})
	}

	if extended {
		response.ID = def.ID
		response.FirstOfCategory = boolPtr(def.FirstOfCategory)
		response.IsAdjective = boolPtr(def.IsAdjective())
		response.IsAdverb = boolPtr(def.IsAdverb())
		response.IsNoun = boolPtr(def.IsNoun())
		response.IsPronoun = boolPtr(def.IsPronoun())
		response.IsVerb = boolPtr(def.IsVerb())
	}

	return response
}

func toComplexFormResponse(form *domain.ComplexForm, extended bool) responses.ComplexFormResponse {
	response := responses.ComplexFormResponse{
		Expression:        form.Expression,
		SupplementaryInfo: stringsOrEmpty(form.SupplementaryInfo),
		Definitions:       make([]responses.DefinitionResponse, 0, len(form.Definitions)),
	}

	for i := range form.Definitions {
		response.Definitions = append(response.Definitions, toDefinitionResponse(&form.Definitions[i], extended))
	}

	if extended {
		response.ID = form.ID
		response.IsForeign = boolPtr(form.IsForeign)
	}

	return response
}

func toOtherEntryResponse(entry domain.OtherEntry, extended bool) responses.OtherEntryResponse {
	response := responses.OtherEntryResponse{
		Text: entry.Text,
		Link: entry.Link,
	}

	if extended {
		response.IsActiveLink = boolPtr(entry.IsActiveLink)
	}

	return response
}

func stringsOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func boolPtr(b bool) *bool {
	return &b
}
