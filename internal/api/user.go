package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipehub/backend/internal/middleware"
	"github.com/recipehub/backend/internal/service"
)

// UserHandler serves account mutations and the caller's own recipe list.
type UserHandler struct {
	users   *service.UserService
	recipes *service.RecipeService
	auth    *service.AuthService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users *service.UserService, recipes *service.RecipeService, auth *service.AuthService) *UserHandler {
	return &UserHandler{users: users, recipes: recipes, auth: auth}
}

// RegisterRoutes mounts the user endpoints under /user. All require
// authentication.
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.Auth(h.auth))
	{
		user.PUT("/profile", h.UpdateProfile)
		user.PUT("/change-password", h.ChangePassword)
		user.DELETE("/account", h.DeleteAccount)
		user.GET("/recipes", h.MyRecipes)
	}
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthenticated"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), userID, service.ProfileUpdate{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, user.Public())
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthenticated"})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.users.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "password updated successfully")
}

func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthenticated"})
		return
	}

	if err := h.users.DeleteAccount(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "account deleted successfully")
}

func (h *UserHandler) MyRecipes(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthenticated"})
		return
	}

	recipes, err := h.recipes.ListByAuthor(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, newRecipeResponses(recipes))
}
