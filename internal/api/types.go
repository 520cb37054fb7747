package api

import (
	"github.com/google/uuid"

	"github.com/recipehub/backend/internal/models"
	"github.com/recipehub/backend/internal/service"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RecipeRequest struct {
	Title         string      `json:"title" binding:"required"`
	ImageURL      string      `json:"imageUrl"`
	Duration      int         `json:"duration" binding:"required,gt=0"`
	Description   string      `json:"description"`
	Ingredients   []string    `json:"ingredients" binding:"required"`
	Steps         []string    `json:"steps" binding:"required"`
	IsGlutenFree  bool        `json:"isGlutenFree"`
	IsVegan       bool        `json:"isVegan"`
	IsVegetarian  bool        `json:"isVegetarian"`
	IsLactoseFree bool        `json:"isLactoseFree"`
	CategoryIDs   []uuid.UUID `json:"categoryIds"`
}

type CategoryRequest struct {
	Title string `json:"title" binding:"required"`
	Color string `json:"color"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// AuthResponse pairs the public user fields with a freshly issued token.
type AuthResponse struct {
	User  models.PublicUser `json:"user"`
	Token string            `json:"token"`
}

// RecipeResponse is a recipe with the minimal author projection attached.
type RecipeResponse struct {
	models.Recipe
	Author *models.AuthorRef `json:"author,omitempty"`
}

// CategoryDetailResponse is a category with its recipes expanded.
type CategoryDetailResponse struct {
	models.Category
	Recipes []RecipeResponse `json:"recipes"`
}

func newRecipeResponse(r models.Recipe) RecipeResponse {
	resp := RecipeResponse{Recipe: r}
	if r.Author != nil {
		resp.Author = &models.AuthorRef{ID: r.Author.ID, Name: r.Author.Name}
	}
	if resp.Categories == nil {
		resp.Categories = []models.Category{}
	}
	return resp
}

func newRecipeResponses(recipes []models.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, newRecipeResponse(r))
	}
	return out
}

func (r RecipeRequest) toInput() service.RecipeInput {
	return service.RecipeInput{
		Title:         r.Title,
		ImageURL:      r.ImageURL,
		Duration:      r.Duration,
		Description:   r.Description,
		Ingredients:   r.Ingredients,
		Steps:         r.Steps,
		IsGlutenFree:  r.IsGlutenFree,
		IsVegan:       r.IsVegan,
		IsVegetarian:  r.IsVegetarian,
		IsLactoseFree: r.IsLactoseFree,
		CategoryIDs:   r.CategoryIDs,
	}
}
