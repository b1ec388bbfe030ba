package controller

import (
	"encoding/json"
	"net/http"
	"slices"
	"strconv"

	"github.com/sage-snippets/quotes-recommender/internal/datasources"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

type QuotesList struct {
	Scroller datasources.QuoteScroller
}

type QuotesListResponse struct {
	Data       []domain.Quote `json:"data"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

// ServeHTTP pages through the quote index. Tag and author filters are
// applied to each fetched page, so a filtered page may come back
// shorter than the requested limit; clients follow next_cursor until
// it is empty.
func (c QuotesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		limit = min(parsed, 100)
	}

	cursor := r.URL.Query().Get("cursor")

	quotes, nextCursor, err := c.Scroller.ScrollQuotes(ctx, cursor, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list quotes", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	filters := domain.QuoteFilters{
		Tags:   r.URL.Query()["tag"],
		Author: r.URL.Query().Get("author"),
	}
	quotes = filterQuotes(quotes, filters)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(QuotesListResponse{
		Data:       quotes,
		NextCursor: nextCursor,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write quotes to response", "error", err)
	}
}

func filterQuotes(quotes []domain.Quote, filters domain.QuoteFilters) []domain.Quote {
	if len(filters.Tags) == 0 && filters.Author == "" {
		return quotes
	}

	var filtered []domain.Quote
	for _, quote := range quotes {
		if filters.Author != "" && quote.Author != filters.Author {
			continue
		}
		if len(filters.Tags) > 0 && !hasAnyTag(quote.Tags, filters.Tags) {
			continue
		}
		filtered = append(filtered, quote)
	}
	return filtered
}

func hasAnyTag(tags, wanted []string) bool {
	for _, tag := range wanted {
		if slices.Contains(tags, tag) {
			return true
		}
	}
	return false
}
