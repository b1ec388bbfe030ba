package controller

import (
	"encoding/json"
	"net/http"

	"github.com/sage-snippets/quotes-recommender/internal/datasources"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

const maxSearchTextBytes = 16 * 1024

type QuoteSearch struct {
	Embedder datasources.Embedder
	Searcher datasources.QuoteSearcher
}

type quoteSearchRequest struct {
	Text  string   `json:"text"`
	Tags  []string `json:"tags"`
	Limit int      `json:"limit"`
}

type QuoteSearchResponse struct {
	Data []domain.ScoredQuote `json:"data"`
}

func (c QuoteSearch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req quoteSearchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSearchTextBytes+1024)).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.Text == "" || len(req.Text) > maxSearchTextBytes {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	vector, err := c.Embedder.EmbedText(ctx, req.Text)
	if err != nil {
		logger.ErrorContext(ctx, "unable to embed search text", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if vector == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	quotes, err := c.Searcher.SearchQuotesByVector(ctx, vector, domain.QuoteFilters{Tags: req.Tags}, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to search quotes", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(QuoteSearchResponse{Data: quotes}); err != nil {
		logger.ErrorContext(ctx, "unable to write quotes to response", "error", err)
	}
}
