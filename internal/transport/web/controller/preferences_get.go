package controller

import (
	"encoding/json"
	"net/http"

	"github.com/sage-snippets/quotes-recommender/internal/datasources"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

type PreferencesGet struct {
	Preferences datasources.PreferencesGetter
	Fetcher     datasources.QuotesFetcher
}

type PreferencesResponse struct {
	Likes       []int                   `json:"likes"`
	Dislikes    []int                   `json:"dislikes"`
	Preferences []domain.UserPreference `json:"preferences,omitempty"`
	Quotes      []domain.Quote          `json:"quotes,omitempty"`
}

func (c PreferencesGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	username := domain.UsernameFromContext(ctx)

	likes, dislikes, err := c.Preferences.GetUserPreferences(ctx, username)
	if err != nil {
		logger.ErrorContext(ctx, "unable to read preferences", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	quotes, err := c.Fetcher.FetchQuotesByID(ctx, append(append([]int{}, likes...), dislikes...))
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch rated quotes", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(PreferencesResponse{
		Likes:       likes,
		Dislikes:    dislikes,
		Preferences: domain.MergePreferences(likes, dislikes),
		Quotes:      quotes,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write preferences to response", "error", err)
	}
}
