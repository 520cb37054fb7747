package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipehub/backend/internal/testhelpers"
)

func TestRegisterEndpoint(t *testing.T) {
	r, _ := testhelpers.NewTestServer(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "ana@example.com",
		"password": "secret123",
		"name":     "Ana",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	var data struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "ana@example.com", data.User.Email)
	assert.NotEmpty(t, data.User.ID)
	assert.NotEmpty(t, data.Token)

	// The password hash never appears on the wire.
	assert.NotContains(t, w.Body.String(), "passwordHash")
	assert.NotContains(t, w.Body.String(), "password_hash")
}

func TestRegisterEndpointDuplicateEmail(t *testing.T) {
	r, _ := testhelpers.NewTestServer(t)
	registerUser(t, r, "ana@example.com", "Ana")

	w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "ana@example.com",
		"password": "other456",
		"name":     "Ana Again",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Message)
}

func TestRegisterEndpointValidation(t *testing.T) {
	r, _ := testhelpers.NewTestServer(t)

	cases := []gin.H{
		{"email": "not-an-email", "password": "secret123", "name": "Ana"},
		{"email": "ana@example.com", "password": "short", "name": "Ana"},
		{"email": "ana@example.com", "password": "secret123"},
	}
	for _, body := range cases {
		w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
	}
}

func TestLoginEndpoint(t *testing.T) {
	r, _ := testhelpers.NewTestServer(t)
	registerUser(t, r, "ana@example.com", "Ana")

	w, env := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ana@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
}

func TestLoginEndpointFailuresMatch(t *testing.T) {
	r, _ := testhelpers.NewTestServer(t)
	registerUser(t, r, "ana@example.com", "Ana")

	wUnknown, envUnknown := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	wWrong, envWrong := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ana@example.com",
		"password": "wrongpass",
	})

	assert.Equal(t, http.StatusBadRequest, wUnknown.Code)
	assert.Equal(t, wUnknown.Code, wWrong.Code)
	assert.Equal(t, envUnknown.Message, envWrong.Message)
}

func TestMeEndpoint(t *testing.T) {
	r, _ := testhelpers.NewTestServer(t)
	userID, token := registerUser(t, r, "ana@example.com", "Ana")

	w, env := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, userID, data.ID)
	assert.Equal(t, "ana@example.com", data.Email)
}

func TestMeEndpointWithoutToken(t *testing.T) {
	r, _ := testhelpers.NewTestServer(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
}

func TestMeEndpointAfterAccountDeletion(t *testing.T) {
	r, _ := testhelpers.NewTestServer(t)
	_, token := registerUser(t, r, "ana@example.com", "Ana")

	w, _ := doJSON(t, r, http.MethodDelete, "/api/user/account", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The token still verifies but the account is gone.
	w, env := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}
