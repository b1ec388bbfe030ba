package controller

import (
	"encoding/json"
	"net/http"

	"github.com/sage-snippets/quotes-recommender/internal/command"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

type PreferencesSet struct {
	Reconcile *command.ReconcilePreferences
}

type preferencesSetRequest struct {
	SelectedLikes    []int `json:"selected_likes"`
	SelectedDislikes []int `json:"selected_dislikes"`
}

type preferencesSetResponse struct {
	Branch   string `json:"branch"`
	QuoteIDs []int  `json:"quote_ids,omitempty"`
}

// ServeHTTP applies one reconciliation cycle against the full selected
// snapshot of the caller's current render. Failed writes are never
// optimistically confirmed; the client re-reads preferences as ground
// truth on its next render.
func (c PreferencesSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	username := domain.UsernameFromContext(ctx)

	var req preferencesSetRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 256*1024)).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := c.Reconcile.Execute(ctx, command.ReconcilePreferencesRequest{
		Username:         username,
		SelectedLikes:    req.SelectedLikes,
		SelectedDislikes: req.SelectedDislikes,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to reconcile preferences", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(preferencesSetResponse{
		Branch:   string(result.Branch),
		QuoteIDs: result.QuoteIDs,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write reconciliation result", "error", err)
	}
}
