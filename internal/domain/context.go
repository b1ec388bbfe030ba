package domain

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerContextKey contextKey = "logger"

func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := ctx.Value(loggerContextKey)
	if logger == nil {
		logger = slog.Default()
	}

	return logger.(*slog.Logger)
}

const userContextKey contextKey = "user"

func ContextWithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, userContextKey, username)
}

func UsernameFromContext(ctx context.Context) string {
	username := ctx.Value(userContextKey)
	if username == nil {
		username = ""
	}
	return username.(string)
}

// AuthMethod identifies how a request was authenticated.
type AuthMethod string

const (
	AuthMethodBasic AuthMethod = "basic"
	AuthMethodAuth0 AuthMethod = "auth0"
)

const authMethodContextKey contextKey = "auth_method"

func ContextWithAuthMethod(ctx context.Context, method AuthMethod) context.Context {
	return context.WithValue(ctx, authMethodContextKey, method)
}

func AuthMethodFromContext(ctx context.Context) AuthMethod {
	method := ctx.Value(authMethodContextKey)
	if method == nil {
		method = AuthMethod("")
	}
	return method.(AuthMethod)
}
