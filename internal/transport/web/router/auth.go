package router

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"golang.org/x/crypto/bcrypt"

	"github.com/sage-snippets/quotes-recommender/internal/datasources"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	Username string
	Method   domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = fmt.Fprintf(w, `{"message":"%s"}`, err.Error())
					return
				}

				ctx := domain.ContextWithUsername(r.Context(), result.Username)
				ctx = domain.ContextWithAuthMethod(ctx, result.Method)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched - continue without auth (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

// NewBasicValidator creates a validator for HTTP basic auth against the
// ledger's credential records. The stored password field is a bcrypt
// hash produced at registration.
func NewBasicValidator(credentials datasources.CredentialLister) AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		username, password, ok := r.BasicAuth()
		if !ok {
			return nil, nil
		}

		allCredentials, err := credentials.GetUserCredentials(r.Context())
		if err != nil {
			return nil, fmt.Errorf("unable to verify credentials")
		}

		stored, found := allCredentials[username]
		if !found {
			return nil, fmt.Errorf("invalid username or password")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(stored["password"]), []byte(password)); err != nil {
			return nil, fmt.Errorf("invalid username or password")
		}

		return &AuthResult{
			Username: username,
			Method:   domain.AuthMethodBasic,
		}, nil
	}
}

// NewAuth0Validator creates a validator for Auth0 JWT tokens.
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer auth0|") {
			return nil, nil
		}

		token, err := jwtValidator.ValidateToken(r.Context(), authHeader[len("Bearer auth0|"):])
		if err != nil {
			return nil, fmt.Errorf("invalid JWT token")
		}

		claims := token.(*validator.ValidatedClaims)
		return &AuthResult{
			Username: claims.RegisteredClaims.Subject,
			Method:   domain.AuthMethodAuth0,
		}, nil
	}, nil
}
