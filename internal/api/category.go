package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/recipehub/backend/internal/middleware"
	"github.com/recipehub/backend/internal/service"
)

// CategoryHandler serves category reads and authenticated mutations.
type CategoryHandler struct {
	categories *service.CategoryService
	auth       *service.AuthService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categories *service.CategoryService, auth *service.AuthService) *CategoryHandler {
	return &CategoryHandler{categories: categories, auth: auth}
}

// RegisterRoutes mounts the category endpoints under /categories.
func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.List)
		categories.GET("/:id", h.Get)
		categories.POST("", middleware.Auth(h.auth), h.Create)
		categories.PUT("/:id", middleware.Auth(h.auth), h.Update)
		categories.DELETE("/:id", middleware.Auth(h.auth), h.Delete)
	}
}

// List returns all categories, each annotated with its recipe count.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, service.ErrCategoryNotFound)
		return
	}

	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, CategoryDetailResponse{
		Category: *category,
		Recipes:  newRecipeResponses(category.Recipes),
	})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	category, err := h.categories.Create(c.Request.Context(), req.Title, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, service.ErrCategoryNotFound)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	category, err := h.categories.Update(c.Request.Context(), id, req.Title, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, service.ErrCategoryNotFound)
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "category deleted successfully")
}
