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

func TestCategoryCRUDEndpoints(t *testing.T) {
	r, _ := testhelpers.NewTestServer(t)
	_, token := registerUser(t, r, "ana@example.com", "Ana")

	italianID := createCategory(t, r, token, "Italian", "#f5428d")

	// Duplicate title is rejected.
	w, env := doJSON(t, r, http.MethodPost, "/api/categories", token, gin.H{
		"title": "Italian",
		"color": "#369ff4",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)

	// Reads are public.
	w, env = doJSON(t, r, http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		RecipeCount int64  `json:"recipeCount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Italian", list[0].Title)
	assert.Zero(t, list[0].RecipeCount)

	// Mutations are not.
	w, _ = doJSON(t, r, http.MethodPut, "/api/categories/"+italianID, "", gin.H{
		"title": "Renamed",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env = doJSON(t, r, http.MethodPut, "/api/categories/"+italianID, token, gin.H{
		"title": "Renamed",
		"color": "#000000",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Renamed", updated.Title)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/categories/"+italianID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCategoryDeleteBlockedEndpoint(t *testing.T) {
	r, _ := testhelpers.NewTestServer(t)
	_, token := registerUser(t, r, "ana@example.com", "Ana")

	italianID := createCategory(t, r, token, "Italian", "#f5428d")
	recipeID := createRecipe(t, r, token, "Carbonara", italianID)

	w, env := doJSON(t, r, http.MethodDelete, "/api/categories/"+italianID, token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/recipes/"+recipeID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/categories/"+italianID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCategoryDetailEndpoint(t *testing.T) {
	r, _ := testhelpers.NewTestServer(t)
	_, token := registerUser(t, r, "ana@example.com", "Ana")

	italianID := createCategory(t, r, token, "Italian", "#f5428d")
	createRecipe(t, r, token, "Carbonara", italianID)

	w, env := doJSON(t, r, http.MethodGet, "/api/categories/"+italianID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		Title   string `json:"title"`
		Recipes []struct {
			Title string `json:"title"`
		} `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, "Italian", detail.Title)
	require.Len(t, detail.Recipes, 1)
	assert.Equal(t, "Carbonara", detail.Recipes[0].Title)
}
