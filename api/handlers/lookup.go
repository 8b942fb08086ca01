// ABOUTME: Lookup handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for dictionary entry lookups

package handlers

import (
	"context"
	"net/http"

	"dle-app-api/api/dto/mappers"
	"dle-app-api/api/dto/requests"
	"dle-app-api/api/dto/responses"
	"dle-app-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// LookupService interface defines the methods needed from the lookup service
type LookupService interface {
	SearchByWord(ctx context.Context, word string) (*domain.SearchResult, error)
	SearchByURL(ctx context.Context, pageURL string) (*domain.SearchResult, error)
}

// LookupHandler handles dictionary lookup HTTP requests
type LookupHandler struct {
	lookupService LookupService
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(lookupService LookupService) *LookupHandler {
	return &LookupHandler{
		lookupService: lookupService,
	}
}

// RegisterRoutes registers all lookup-related routes
func (h *LookupHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "lookupWord",
		Method:      http.MethodGet,
		Path:        "/entries/{word}",
		Summary:     "Look up a word",
		Description: "Fetches the dictionary page for a word and returns its parsed articles",
		Tags:        []string{"Entries"},
	}, h.LookupWord)

	huma.Register(api, huma.Operation{
		OperationID: "lookupByURL",
		Method:      http.MethodGet,
		Path:        "/entries",
		Summary:     "Look up an entry page by URL",
		Description: "Fetches a dictionary page directly by URL, for following cross-reference links",
		Tags:        []string{"Entries"},
	}, h.LookupByURL)
}

// LookupWordInput defines the input for the LookupWord operation
type LookupWordInput struct {
	Word string `path:"word" minLength:"1" maxLength:"100" doc:"Word to look up"`
	requests.ExtendedFlag
}

// LookupOutput defines the output for both lookup operations
type LookupOutput struct {
	Body responses.SearchResultResponse
}

// LookupWord handles the GET /entries/{word} endpoint
func (h *LookupHandler) LookupWord(ctx context.Context, input *LookupWordInput) (*LookupOutput, error) {
	result, err := h.lookupService.SearchByWord(ctx, input.Word)
	if err != nil {
		return nil, toHumaError(err)
	}

	response := mappers.ToSearchResultResponse(result, input.Extended)
	if response == nil {
		return nil, huma.Error404NotFound("Entry not found")
	}

	return &LookupOutput{Body: *response}, nil
}

// LookupByURLInput defines the input for the LookupByURL operation
type LookupByURLInput struct {
	URL string `query:"url" required:"true" format:"uri" doc:"Dictionary page URL to fetch"`
	requests.ExtendedFlag
}

// LookupByURL handles the GET /entries endpoint
func (h *LookupHandler) LookupByURL(ctx context.Context, input *LookupByURLInput) (*LookupOutput, error) {
	result, err := h.lookupService.SearchByURL(ctx, input.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	response := mappers.ToSearchResultResponse(result, input.Extended)
	if response == nil {
		return nil, huma.Error404NotFound("Entry not found")
	}

	return &LookupOutput{Body: *response}, nil
}
