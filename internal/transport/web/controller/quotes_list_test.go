package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sage-snippets/quotes-recommender/internal/datasources/mocks"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

func TestQuotesList_ServeHTTP(t *testing.T) {
	page := []domain.Quote{
		{ID: 1, Text: "a", Author: "Seneca", Tags: []string{"life"}},
		{ID: 2, Text: "b", Author: "Rumi", Tags: []string{"love"}},
		{ID: 3, Text: "c", Author: "Seneca", Tags: []string{"wisdom"}},
	}

	cases := []struct {
		name       string
		query      string
		scrollArgs []interface{} // cursor, limit
		wantIDs    []int
		wantCursor string
	}{
		{
			name:       "first_page",
			query:      "",
			scrollArgs: []interface{}{"", 20},
			wantIDs:    []int{1, 2, 3},
			wantCursor: "cursor-1",
		},
		{
			name:       "cursor_and_limit_forwarded",
			query:      "?cursor=cursor-1&limit=3",
			scrollArgs: []interface{}{"cursor-1", 3},
			wantIDs:    []int{1, 2, 3},
			wantCursor: "cursor-1",
		},
		{
			name:       "author_filter",
			query:      "?author=Seneca",
			scrollArgs: []interface{}{"", 20},
			wantIDs:    []int{1, 3},
			wantCursor: "cursor-1",
		},
		{
			name:       "tag_filter",
			query:      "?tag=love&tag=wisdom",
			scrollArgs: []interface{}{"", 20},
			wantIDs:    []int{2, 3},
			wantCursor: "cursor-1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scroller := mocks.NewMockQuoteScroller(t)
			scroller.EXPECT().
				ScrollQuotes(mock.Anything, tc.scrollArgs[0], tc.scrollArgs[1]).
				Return(page, "cursor-1", nil)

			controller := QuotesList{Scroller: scroller}

			req := httptest.NewRequest(http.MethodGet, "/v1/quotes"+tc.query, nil)
			req = testContextWithUsername("")(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var response QuotesListResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

			var gotIDs []int
			for _, quote := range response.Data {
				gotIDs = append(gotIDs, quote.ID)
			}
			assert.Equal(t, tc.wantIDs, gotIDs)
			assert.Equal(t, tc.wantCursor, response.NextCursor)
		})
	}
}

func TestQuotesList_ServeHTTP_InvalidLimit(t *testing.T) {
	scroller := mocks.NewMockQuoteScroller(t)

	controller := QuotesList{Scroller: scroller}

	req := httptest.NewRequest(http.MethodGet, "/v1/quotes?limit=zero", nil)
	req = testContextWithUsername("")(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
