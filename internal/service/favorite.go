package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipehub/backend/internal/models"
)

// FavoriteService implements the favorite bookmark rules. Adding twice and
// removing what was never added are explicit errors, not no-ops.
type FavoriteService struct {
	db *gorm.DB
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// List returns the recipes the user has favorited, with categories and
// author loaded. The favorite rows themselves are not exposed.
func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Categories").
		Preload("Author").
		Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
		Where("favorites.user_id = ?", userID).
		Find(&recipes).Error
	return recipes, err
}

// Add favorites a recipe for a user. A second add of the same pair fails
// with ErrAlreadyFavorited, whether caught by the pre-check or by the
// composite unique index.
func (s *FavoriteService) Add(ctx context.Context, userID, recipeID uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	var existing models.Favorite
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&existing).Error
	if err == nil {
		return ErrAlreadyFavorited
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	favorite := models.Favorite{UserID: userID, RecipeID: recipeID}
	if err := s.db.WithContext(ctx).Create(&favorite).Error; err != nil {
		if IsUniqueViolation(err) {
			return ErrAlreadyFavorited
		}
		return err
	}
	return nil
}

// Remove deletes the favorite for the given pair, failing when none exists.
func (s *FavoriteService) Remove(ctx context.Context, userID, recipeID uuid.UUID) error {
	var favorite models.Favorite
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotInFavorites
		}
		return err
	}

	return s.db.WithContext(ctx).Delete(&favorite).Error
}
