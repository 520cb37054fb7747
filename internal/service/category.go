package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipehub/backend/internal/models"
)

// CategoryWithCount is a category annotated with how many recipes reference
// it. The count is derived per request, never stored.
type CategoryWithCount struct {
	models.Category
	RecipeCount int64 `json:"recipeCount"`
}

// CategoryService implements category CRUD and the delete-protection rule.
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new category service.
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// List returns all categories annotated with their recipe counts.
func (s *CategoryService) List(ctx context.Context) ([]CategoryWithCount, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}

	annotated := make([]CategoryWithCount, 0, len(categories))
	for i := range categories {
		count := s.db.WithContext(ctx).Model(&categories[i]).Association("Recipes").Count()
		annotated = append(annotated, CategoryWithCount{Category: categories[i], RecipeCount: count})
	}
	return annotated, nil
}

// Get fetches a category with its recipes and their authors loaded.
func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).
		Preload("Recipes").
		Preload("Recipes.Author").
		First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Create persists a new category. Titles are unique.
func (s *CategoryService) Create(ctx context.Context, title, color string) (*models.Category, error) {
	var existing models.Category
	err := s.db.WithContext(ctx).Where("title = ?", title).First(&existing).Error
	if err == nil {
		return nil, ErrCategoryTitleTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := models.Category{Title: title, Color: color}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		if IsUniqueViolation(err) {
			return nil, ErrCategoryTitleTaken
		}
		return nil, err
	}
	return &category, nil
}

// Update changes a category's title and color. Keeping the current title is
// allowed; taking another category's title is not.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, title, color string) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if title != category.Title {
		var other models.Category
		err := s.db.WithContext(ctx).Where("title = ?", title).First(&other).Error
		if err == nil {
			return nil, ErrCategoryTitleTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	category.Title = title
	category.Color = color
	if err := s.db.WithContext(ctx).Save(&category).Error; err != nil {
		if IsUniqueViolation(err) {
			return nil, ErrCategoryTitleTaken
		}
		return nil, err
	}
	return &category, nil
}

// Delete removes a category. A category referenced by any recipe is
// protected and cannot be deleted.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	if count := s.db.WithContext(ctx).Model(&category).Association("Recipes").Count(); count > 0 {
		return ErrCategoryInUse
	}

	return s.db.WithContext(ctx).Delete(&category).Error
}
