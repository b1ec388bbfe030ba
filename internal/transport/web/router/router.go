package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sage-snippets/quotes-recommender/internal/command"
	"github.com/sage-snippets/quotes-recommender/internal/datasources"
	"github.com/sage-snippets/quotes-recommender/internal/transport/web/controller"
)

func MakeRouter(
	ledger datasources.PreferenceLedger,
	vectorStore datasources.VectorStore,
	embedder datasources.Embedder,
	authMiddleware func(http.Handler) http.Handler,
	registerUserCmd *command.RegisterUser,
	reconcileCmd *command.ReconcilePreferences,
	toggleCmd *command.TogglePreference,
	recommendCmd *command.RecommendQuotes,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/users", controller.UserRegister{
		Register: registerUserCmd,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/users/me/preferences", requireAuthMiddleware(controller.PreferencesGet{
		Preferences: ledger,
		Fetcher:     vectorStore,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/me/preferences", requireAuthMiddleware(controller.PreferencesSet{
		Reconcile: reconcileCmd,
	})).Methods(http.MethodPut, http.MethodOptions)

	r.Handle("/v1/users/me/recommendations", requireAuthMiddleware(controller.RecommendationsList{
		Recommend: recommendCmd,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/quotes/{quote_id}/{polarity}/{value}", requireAuthMiddleware(controller.PreferenceToggle{
		Toggle: toggleCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/quotes", controller.QuotesList{
		Scroller: vectorStore,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/quotes/search", controller.QuoteSearch{
		Embedder: embedder,
		Searcher: vectorStore,
	}).Methods(http.MethodPost, http.MethodOptions)

	return r, nil
}
