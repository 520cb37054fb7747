package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/recipehub/backend/internal/middleware"
	"github.com/recipehub/backend/internal/service"
)

// RecipeHandler serves public recipe reads and owner-gated mutations.
type RecipeHandler struct {
	recipes *service.RecipeService
	auth    *service.AuthService
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(recipes *service.RecipeService, auth *service.AuthService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, auth: auth}
}

// RegisterRoutes mounts the recipe endpoints under /recipes. Reads are
// public; mutations require authentication.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.List)
		recipes.GET("/:id", h.Get)
		recipes.POST("", middleware.Auth(h.auth), h.Create)
		recipes.PUT("/:id", middleware.Auth(h.auth), h.Update)
		recipes.DELETE("/:id", middleware.Auth(h.auth), h.Delete)
	}
}

func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, newRecipeResponses(recipes))
}

func (h *RecipeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, service.ErrRecipeNotFound)
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, newRecipeResponse(*recipe))
}

// Create stores a new recipe. The author is always the authenticated user,
// never client input.
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthenticated"})
		return
	}

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), userID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, newRecipeResponse(*recipe))
}

func (h *RecipeHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, service.ErrRecipeNotFound)
		return
	}

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	recipe, err := h.recipes.Update(c.Request.Context(), id, userID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, newRecipeResponse(*recipe))
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, service.ErrRecipeNotFound)
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "recipe deleted successfully")
}
