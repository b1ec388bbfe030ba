package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sage-snippets/quotes-recommender/internal/datasources/mocks"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

func TestNewBasicValidator(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	storedCredentials := map[string]map[string]string{
		"alice": {"password": string(hash)},
	}

	cases := []struct {
		name         string
		username     string
		password     string
		noBasicAuth  bool
		wantUsername string
		wantErr      bool
	}{
		{
			name:         "valid_credentials",
			username:     "alice",
			password:     "hunter2",
			wantUsername: "alice",
		},
		{
			name:     "wrong_password",
			username: "alice",
			password: "wrong",
			wantErr:  true,
		},
		{
			name:     "unknown_user",
			username: "bob",
			password: "hunter2",
			wantErr:  true,
		},
		{
			name:        "no_basic_auth_header_does_not_apply",
			noBasicAuth: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			credentials := mocks.NewMockCredentialLister(t)
			if !tc.noBasicAuth {
				credentials.EXPECT().
					GetUserCredentials(mock.Anything).
					Return(storedCredentials, nil)
			}

			validate := NewBasicValidator(credentials)

			req := httptest.NewRequest(http.MethodGet, "/v1/users/me/preferences", nil)
			if !tc.noBasicAuth {
				req.SetBasicAuth(tc.username, tc.password)
			}

			result, err := validate(req)
			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)

			if tc.wantUsername == "" {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tc.wantUsername, result.Username)
			assert.Equal(t, domain.AuthMethodBasic, result.Method)
		})
	}
}
