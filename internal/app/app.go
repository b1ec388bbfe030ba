package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sage-snippets/quotes-recommender/internal/command"
	"github.com/sage-snippets/quotes-recommender/internal/datasources"
	"github.com/sage-snippets/quotes-recommender/internal/datasources/pinecone"
	"github.com/sage-snippets/quotes-recommender/internal/datasources/redis"
	"github.com/sage-snippets/quotes-recommender/internal/datasources/voyageai"
	"github.com/sage-snippets/quotes-recommender/internal/transport/web/router"
	"github.com/sage-snippets/quotes-recommender/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	ledger, err := SetupPreferenceLedger(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up preference ledger: %w", err)
	}

	vectorStore, err := SetupVectorStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up vector store: %w", err)
	}

	embedder := SetupEmbedder(ctx)

	authMiddleware, err := setupAuthMiddleware(ctx, ledger)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	threshold := MustGetEnvAsInt(ctx, "SIMILARITY_THRESHOLD")

	registerUserCmd := command.NewRegisterUser(ledger, ledger)
	reconcileCmd := command.NewReconcilePreferences(ledger, ledger, ledger)
	toggleCmd := &command.TogglePreference{
		Getter:     ledger,
		Reconciler: reconcileCmd,
	}
	similarUserCmd := command.NewFindMostSimilarUser(ledger, ledger, threshold)
	recommendCmd := command.NewRecommendQuotes(
		ledger,
		vectorStore,
		vectorStore,
		similarUserCmd,
		command.DefaultRecommendQuotesConfig(),
	)

	httpRouter, err := router.MakeRouter(
		ledger,
		vectorStore,
		embedder,
		authMiddleware,
		registerUserCmd,
		reconcileCmd,
		toggleCmd,
		recommendCmd,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:      MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:  MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostname: MustGetEnvAsString(ctx, "HTTP_AUTOCERT_HOSTNAME"),
			Router:           httpRouter,
		},
	}, nil
}

func SetupPreferenceLedger(ctx context.Context) (datasources.PreferenceLedger, error) {
	store, err := redis.Connect(ctx, redis.Config{
		Addr:     MustGetEnvAsString(ctx, "REDIS_ADDR"),
		Username: GetEnvAsStringOrDefault(ctx, "REDIS_USERNAME", ""),
		Password: GetEnvAsStringOrDefault(ctx, "REDIS_PASSWORD", ""),
		DB:       MustGetEnvAsInt(ctx, "REDIS_DB"),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return store, nil
}

func SetupVectorStore(ctx context.Context) (datasources.VectorStore, error) {
	switch driver := MustGetEnvAsString(ctx, "VECTOR_STORE_DRIVER"); driver {
	case "null":
		return datasources.NullVectorStore{}, nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown vector store driver [%s]", driver)
	}
}

func SetupEmbedder(ctx context.Context) datasources.Embedder {
	apiKey := GetEnvAsStringOrDefault(ctx, "VOYAGEAI_API_KEY", "")
	if apiKey == "" {
		return datasources.NullEmbedder{}
	}
	return voyageai.NewClient(apiKey, GetEnvAsStringOrDefault(ctx, "VOYAGEAI_MODEL", "voyage-3"))
}

func setupAuthMiddleware(
	ctx context.Context, ledger datasources.PreferenceLedger,
) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "basic":
			validators = append(validators, router.NewBasicValidator(ledger))
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
