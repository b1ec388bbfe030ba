package controller

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sage-snippets/quotes-recommender/internal/command"
	"github.com/sage-snippets/quotes-recommender/internal/datasources/mocks"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

func testContextWithUsername(username string) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctx = domain.ContextWithUsername(ctx, username)
		return r.WithContext(ctx)
	}
}

func TestPreferenceToggle_ServeHTTP(t *testing.T) {
	cases := []struct {
		name            string
		quoteID         string
		polarity        string
		value           string
		currentLikes    []int
		currentDislikes []int
		wantSetLikes    []int
		wantSetDislikes []int
		wantDelLikes    []int
		skipLedger      bool
		setErr          error
		wantStatus      int
	}{
		{
			name:         "like_set",
			quoteID:      "7",
			polarity:     "like",
			value:        "true",
			wantSetLikes: []int{7},
			wantStatus:   http.StatusNoContent,
		},
		{
			name:            "dislike_set",
			quoteID:         "7",
			polarity:        "dislike",
			value:           "true",
			wantSetDislikes: []int{7},
			wantStatus:      http.StatusNoContent,
		},
		{
			name:         "like_unset",
			quoteID:      "7",
			polarity:     "like",
			value:        "false",
			currentLikes: []int{7, 8},
			wantDelLikes: []int{7},
			wantStatus:   http.StatusNoContent,
		},
		{
			name:       "invalid_quote_id",
			quoteID:    "not-a-number",
			polarity:   "like",
			value:      "true",
			skipLedger: true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid_polarity",
			quoteID:    "7",
			polarity:   "favourite",
			value:      "true",
			skipLedger: true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid_value",
			quoteID:    "7",
			polarity:   "like",
			value:      "maybe",
			skipLedger: true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:         "ledger_error",
			quoteID:      "7",
			polarity:     "like",
			value:        "true",
			wantSetLikes: []int{7},
			setErr:       errors.New("redis down"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			getter := mocks.NewMockPreferencesGetter(t)
			setter := mocks.NewMockPreferencesSetter(t)
			deleter := mocks.NewMockPreferenceDeleter(t)

			if !tc.skipLedger {
				getter.EXPECT().
					GetUserPreferences(mock.Anything, "alice").
					Return(tc.currentLikes, tc.currentDislikes, nil)
			}
			if tc.wantSetLikes != nil || tc.wantSetDislikes != nil {
				setter.EXPECT().
					SetUserPreferences(mock.Anything, "alice", tc.wantSetLikes, tc.wantSetDislikes).
					Return(tc.setErr)
			}
			if tc.wantDelLikes != nil {
				deleter.EXPECT().
					DeleteUserPreference(mock.Anything, "alice", tc.wantDelLikes, []int(nil)).
					Return(true, nil)
			}

			controller := PreferenceToggle{
				Toggle: &command.TogglePreference{
					Getter:     getter,
					Reconciler: command.NewReconcilePreferences(getter, setter, deleter),
				},
			}

			req := httptest.NewRequest(
				http.MethodPost, "/v1/quotes/"+tc.quoteID+"/"+tc.polarity+"/"+tc.value, nil)
			req = testContextWithUsername("alice")(req)
			req = mux.SetURLVars(req, map[string]string{
				"quote_id": tc.quoteID,
				"polarity": tc.polarity,
				"value":    tc.value,
			})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
