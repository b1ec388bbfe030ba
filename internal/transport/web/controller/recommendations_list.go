package controller

import (
	"encoding/json"
	"net/http"

	"github.com/sage-snippets/quotes-recommender/internal/command"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

type RecommendationsList struct {
	Recommend *command.RecommendQuotes
}

type RecommendationsResponse struct {
	ItemItem    []domain.ScoredQuote `json:"item_item"`
	UserUser    []domain.Quote       `json:"user_user"`
	SimilarUser string               `json:"similar_user,omitempty"`
}

func (c RecommendationsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	username := domain.UsernameFromContext(ctx)

	result, err := c.Recommend.Execute(ctx, command.RecommendQuotesRequest{Username: username})
	if err != nil {
		logger.ErrorContext(ctx, "unable to assemble recommendations", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(RecommendationsResponse{
		ItemItem:    result.ItemItem,
		UserUser:    result.UserUser,
		SimilarUser: result.SimilarUser,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write recommendations to response", "error", err)
	}
}
