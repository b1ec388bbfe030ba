package controller

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sage-snippets/quotes-recommender/internal/command"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

// Bool string constants for route parameters.
const (
	boolTrue  = "true"
	boolFalse = "false"
)

type PreferenceToggle struct {
	Toggle *command.TogglePreference
}

// ServeHTTP handles a single explicit like/dislike/unlike/undislike
// toggle, reducing it to the reconciler's snapshot contract.
func (c PreferenceToggle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	logger := domain.LoggerFromContext(r.Context())

	quoteID, err := strconv.Atoi(vars["quote_id"])
	if err != nil || quoteID < 1 {
		logger.ErrorContext(r.Context(), "invalid quote id", "quote_id", vars["quote_id"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	polarity := domain.Polarity(vars["polarity"])
	if !slices.Contains(domain.ValidPolarities, polarity) {
		logger.ErrorContext(r.Context(), "invalid polarity", "polarity", vars["polarity"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var value bool
	switch vars["value"] {
	case boolTrue:
		value = true
	case boolFalse:
		value = false
	default:
		logger.ErrorContext(r.Context(), "invalid toggle value", "value", vars["value"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ctx := domain.ContextWithLogger(r.Context(), logger.With("quote_id", quoteID))

	_, err = c.Toggle.Execute(ctx, command.TogglePreferenceRequest{
		Username: domain.UsernameFromContext(r.Context()),
		QuoteID:  quoteID,
		Polarity: polarity,
		Value:    value,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to apply preference toggle", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
