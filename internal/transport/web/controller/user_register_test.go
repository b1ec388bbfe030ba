package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sage-snippets/quotes-recommender/internal/command"
	"github.com/sage-snippets/quotes-recommender/internal/datasources/mocks"
)

func TestUserRegister_ServeHTTP(t *testing.T) {
	cases := []struct {
		name         string
		body         string
		existing     map[string]map[string]string
		skipList     bool
		wantRegister bool
		wantStatus   int
	}{
		{
			name:         "created",
			body:         `{"username": "alice", "password": "hunter2", "email": "alice@example.com"}`,
			existing:     map[string]map[string]string{},
			wantRegister: true,
			wantStatus:   http.StatusCreated,
		},
		{
			name: "username_taken",
			body: `{"username": "alice", "password": "hunter2"}`,
			existing: map[string]map[string]string{
				"alice": {"password": "hash"},
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "missing_password",
			body:       `{"username": "alice"}`,
			skipList:   true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid_json",
			body:       `{`,
			skipList:   true,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			registrar := mocks.NewMockUserRegistrar(t)
			credentials := mocks.NewMockCredentialLister(t)

			if !tc.skipList {
				credentials.EXPECT().
					GetUserCredentials(mock.Anything).
					Return(tc.existing, nil)
			}
			if tc.wantRegister {
				registrar.EXPECT().
					RegisterUser(mock.Anything, "alice", mock.Anything).
					Return(nil)
			}

			controller := UserRegister{
				Register: command.NewRegisterUser(registrar, credentials),
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/users", strings.NewReader(tc.body))
			req = testContextWithUsername("")(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
