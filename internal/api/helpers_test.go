package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// envelope mirrors the wire format of every response.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

func registerUser(t *testing.T, r *gin.Engine, email, name string) (userID, token string) {
	t.Helper()

	w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    email,
		"password": "secret123",
		"name":     name,
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var data struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.User.ID, data.Token
}

func createRecipe(t *testing.T, r *gin.Engine, token, title string, categoryIDs ...string) string {
	t.Helper()

	body := gin.H{
		"title":       title,
		"duration":    30,
		"ingredients": []string{"flour", "water"},
		"steps":       []string{"mix", "bake"},
	}
	if len(categoryIDs) > 0 {
		body["categoryIds"] = categoryIDs
	}

	w, env := doJSON(t, r, http.MethodPost, "/api/recipes", token, body)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var data struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.ID
}

func createCategory(t *testing.T, r *gin.Engine, token, title, color string) string {
	t.Helper()

	w, env := doJSON(t, r, http.MethodPost, "/api/categories", token, gin.H{
		"title": title,
		"color": color,
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var data struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.ID
}
