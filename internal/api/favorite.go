package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/recipehub/backend/internal/middleware"
	"github.com/recipehub/backend/internal/service"
)

// FavoriteHandler serves the favorites endpoints. All of them require
// authentication.
type FavoriteHandler struct {
	favorites *service.FavoriteService
	auth      *service.AuthService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favorites *service.FavoriteService, auth *service.AuthService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, auth: auth}
}

// RegisterRoutes mounts the favorite endpoints under /favorites.
func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	favorites := router.Group("/favorites")
	favorites.Use(middleware.Auth(h.auth))
	{
		favorites.GET("", h.List)
		favorites.POST("/:recipeId", h.Add)
		favorites.DELETE("/:recipeId", h.Remove)
	}
}

// List returns the favorited recipes themselves, not the favorite rows.
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthenticated"})
		return
	}

	recipes, err := h.favorites.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, newRecipeResponses(recipes))
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthenticated"})
		return
	}

	recipeID, err := uuid.Parse(c.Param("recipeId"))
	if err != nil {
		respondError(c, service.ErrRecipeNotFound)
		return
	}

	if err := h.favorites.Add(c.Request.Context(), userID, recipeID); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusCreated, "recipe added to favorites")
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthenticated"})
		return
	}

	recipeID, err := uuid.Parse(c.Param("recipeId"))
	if err != nil {
		respondError(c, service.ErrNotInFavorites)
		return
	}

	if err := h.favorites.Remove(c.Request.Context(), userID, recipeID); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "recipe removed from favorites")
}
