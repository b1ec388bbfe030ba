package command

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/sage-snippets/quotes-recommender/internal/datasources"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

// RegisterUserRequest carries the fields of a registration form.
type RegisterUserRequest struct {
	Username string
	Password string
	Name     string
	Email    string
}

// RegisterUser stores a new user's credential map under a unique
// username. Credential fields are opaque to the ledger; only the
// password is transformed (bcrypt) before storage.
type RegisterUser struct {
	Registrar   datasources.UserRegistrar
	Credentials datasources.CredentialLister
}

func NewRegisterUser(
	registrar datasources.UserRegistrar,
	credentials datasources.CredentialLister,
) *RegisterUser {
	return &RegisterUser{
		Registrar:   registrar,
		Credentials: credentials,
	}
}

func (c *RegisterUser) Execute(ctx context.Context, req RegisterUserRequest) (Empty, error) {
	if req.Username == "" || req.Password == "" {
		return Empty{}, fmt.Errorf("username and password are required")
	}

	existing, err := c.Credentials.GetUserCredentials(ctx)
	if err != nil {
		return Empty{}, fmt.Errorf("listing existing users: %w", err)
	}
	if _, taken := existing[req.Username]; taken {
		return Empty{}, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return Empty{}, fmt.Errorf("hashing password: %w", err)
	}

	credentials := map[string]string{
		"password": string(hash),
		"name":     req.Name,
		"email":    req.Email,
	}

	if err := c.Registrar.RegisterUser(ctx, req.Username, credentials); err != nil {
		return Empty{}, fmt.Errorf("registering user: %w", err)
	}

	return Empty{}, nil
}
