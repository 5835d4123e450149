package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"courses_api/internal/models"
	"courses_api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentUser(t *testing.T) {
	s, _, users, _ := newMockService()
	users.current = joe
	r := newTestRouter(s)

	w := do(t, r, http.MethodGet, "/api/users", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/users", nil, joeCreds)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"firstName":"Joe","lastName":"Smith","emailAddress":"joe@smith.com"}`, w.Body.String())

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "password")
	assert.NotContains(t, raw, "createdAt")
}

func TestCreateUser(t *testing.T) {
	s, _, users, _ := newMockService()
	users.signUpID = 12
	r := newTestRouter(s)

	body := map[string]any{
		"firstName":    "Sally",
		"lastName":     "Jones",
		"emailAddress": "sally@jones.com",
		"password":     "sallypassword",
		"id":           999,
	}
	w := do(t, r, http.MethodPost, "/api/users", body, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/users/12", w.Header().Get("Location"))
	assert.Empty(t, w.Body.String())
	assert.Equal(t, models.NewUserInput{
		FirstName:    "Sally",
		LastName:     "Jones",
		EmailAddress: "sally@jones.com",
		Password:     "sallypassword",
	}, users.lastSignUp)
}

func TestCreateUser_Failures(t *testing.T) {
	cases := []struct {
		name     string
		body     any
		err      error
		wantCode int
		wantMsgs []string
	}{
		{
			name:     "malformed json",
			body:     `{"firstName":`,
			wantCode: http.StatusBadRequest,
			wantMsgs: []string{"Request body must be valid JSON"},
		},
		{
			name:     "validation",
			body:     map[string]string{"emailAddress": "bad"},
			err:      &service.Error{Kind: service.KindValidation, Messages: []string{"Email Address is missing or is not valid"}},
			wantCode: http.StatusBadRequest,
			wantMsgs: []string{"Email Address is missing or is not valid"},
		},
		{
			name:     "duplicate email",
			body:     map[string]string{"emailAddress": "joe@smith.com"},
			err:      &service.Error{Kind: service.KindConstraint, Messages: []string{"emailAddress must be unique"}},
			wantCode: http.StatusBadRequest,
			wantMsgs: []string{"emailAddress must be unique"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _, users, _ := newMockService()
			users.signUpErr = tc.err
			r := newTestRouter(s)

			w := do(t, r, http.MethodPost, "/api/users", tc.body, nil)
			assert.Equal(t, tc.wantCode, w.Code)
			assert.Equal(t, tc.wantMsgs, decodeMessages(t, w))
			assert.Empty(t, w.Header().Get("Location"))
		})
	}
}

func TestCreateUser_EmptyBodyReachesValidation(t *testing.T) {
	s, _, users, _ := newMockService()
	users.signUpErr = &service.Error{Kind: service.KindValidation, Messages: []string{"Email Address is missing or is not valid"}}
	r := newTestRouter(s)

	w := do(t, r, http.MethodPost, "/api/users", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 1, users.signUpCalls)
	assert.Equal(t, models.NewUserInput{}, users.lastSignUp)
}

func TestCreateUser_Unclassified(t *testing.T) {
	s, _, users, _ := newMockService()
	users.signUpErr = errors.New("database is locked")
	r := newTestRouter(s, WithErrorLogging(true))

	w := do(t, r, http.MethodPost, "/api/users", map[string]string{}, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"An unexpected error occurred","error":{}}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "locked")
}
