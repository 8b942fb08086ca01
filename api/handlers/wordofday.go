// ABOUTME: Word of the day handler for the Huma API
// ABOUTME: Exposes the dictionary's daily featured word, optionally with its full entry

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

// WordOfDayService interface defines the methods needed from the word of the
// day service
type WordOfDayService interface {
	Today(ctx context.Context) (*domain.WordOfDay, error)
}

// WordOfDayHandler handles word of the day HTTP requests
type WordOfDayHandler struct {
	wordOfDayService WordOfDayService
	lookupService    LookupService
}

// NewWordOfDayHandler creates a new word of the day handler
func NewWordOfDayHandler(wordOfDayService WordOfDayService, lookupService LookupService) *WordOfDayHandler {
	return &WordOfDayHandler{
		wordOfDayService: wordOfDayService,
		lookupService:    lookupService,
	}
}

// RegisterRoutes registers the word of the day route
func (h *WordOfDayHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "wordOfTheDay",
		Method:      http.MethodGet,
		Path:        "/word-of-the-day",
		Summary:     "Get the word of the day",
		Description: "Returns the dictionary's featured word; with extended=true the full entry is looked up and attached",
		Tags:        []string{"Word of the day"},
	}, h.WordOfDay)
}

// WordOfDayInput defines the input for the WordOfDay operation
type WordOfDayInput struct {
	requests.ExtendedFlag
}

// WordOfDayOutput defines the output for the WordOfDay operation
type WordOfDayOutput struct {
	Body responses.WordOfDayResponse
}

// WordOfDay handles the GET /word-of-the-day endpoint
func (h *WordOfDayHandler) WordOfDay(ctx context.Context, input *WordOfDayInput) (*WordOfDayOutput, error) {
	today, err := h.wordOfDayService.Today(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	var entry *responses.SearchResultResponse
	if input.Extended && h.lookupService != nil {
		result, err := h.lookupService.SearchByWord(ctx, today.Word)
		if err != nil {
			return nil, toHumaError(err)
		}
		entry = mappers.ToSearchResultResponse(result, true)
	}

	response := mappers.ToWordOfDayResponse(today, entry)
	if response == nil {
		return nil, huma.Error404NotFound("No word of the day available")
	}

	return &WordOfDayOutput{Body: *response}, nil
}
