package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipehub/backend/internal/models"
)

// RecipeInput carries the client-settable fields of a recipe. The author is
// never part of it: it always comes from the authenticated identity.
type RecipeInput struct {
	Title         string
	ImageURL      string
	Duration      int
	Description   string
	Ingredients   []string
	Steps         []string
	IsGlutenFree  bool
	IsVegan       bool
	IsVegetarian  bool
	IsLactoseFree bool
	CategoryIDs   []uuid.UUID
}

// RecipeService implements recipe CRUD with ownership enforcement.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// List returns all recipes with their categories and author loaded.
func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Categories").
		Preload("Author").
		Find(&recipes).Error
	return recipes, err
}

// ListByAuthor returns the recipes authored by one user.
func (s *RecipeService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Categories").
		Preload("Author").
		Where("author_id = ?", authorID).
		Find(&recipes).Error
	return recipes, err
}

// Get fetches a single recipe by id.
func (s *RecipeService) Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Categories").
		Preload("Author").
		First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Create persists a new recipe owned by authorID and links it to the given
// categories. Unknown category ids are rejected before the insert.
func (s *RecipeService) Create(ctx context.Context, authorID uuid.UUID, input RecipeInput) (*models.Recipe, error) {
	categories, err := s.resolveCategories(ctx, input.CategoryIDs)
	if err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		Title:         input.Title,
		ImageURL:      input.ImageURL,
		Duration:      input.Duration,
		Description:   input.Description,
		Ingredients:   input.Ingredients,
		Steps:         input.Steps,
		IsGlutenFree:  input.IsGlutenFree,
		IsVegan:       input.IsVegan,
		IsVegetarian:  input.IsVegetarian,
		IsLactoseFree: input.IsLactoseFree,
		AuthorID:      authorID,
		Categories:    categories,
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrUnknownCategory
		}
		return nil, err
	}

	return s.Get(ctx, recipe.ID)
}

// Update replaces the recipe's scalar fields and its category association
// set. Only the author may update; the author itself never changes.
func (s *RecipeService) Update(ctx context.Context, id, subjectID uuid.UUID, input RecipeInput) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	if !IsOwner(subjectID, recipe.AuthorID) {
		return nil, ErrNotRecipeAuthor
	}

	categories, err := s.resolveCategories(ctx, input.CategoryIDs)
	if err != nil {
		return nil, err
	}

	recipe.Title = input.Title
	recipe.ImageURL = input.ImageURL
	recipe.Duration = input.Duration
	recipe.Description = input.Description
	recipe.Ingredients = input.Ingredients
	recipe.Steps = input.Steps
	recipe.IsGlutenFree = input.IsGlutenFree
	recipe.IsVegan = input.IsVegan
	recipe.IsVegetarian = input.IsVegetarian
	recipe.IsLactoseFree = input.IsLactoseFree

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&recipe).Error; err != nil {
			return err
		}
		// Replace, not merge: the association set becomes exactly the
		// client-supplied list.
		return tx.Model(&recipe).Association("Categories").Replace(categories)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, recipe.ID)
}

// Delete removes a recipe together with its favorites and category links.
// Only the author may delete.
func (s *RecipeService) Delete(ctx context.Context, id, subjectID uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	if !IsOwner(subjectID, recipe.AuthorID) {
		return ErrNotRecipeAuthor
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteRecipeRows(tx, &recipe)
	})
}

// deleteRecipeRows removes a recipe and its dependent rows inside an open
// transaction. Favorites go first, then the join rows, then the recipe.
func deleteRecipeRows(tx *gorm.DB, recipe *models.Recipe) error {
	if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.Favorite{}).Error; err != nil {
		return err
	}
	if err := tx.Model(recipe).Association("Categories").Clear(); err != nil {
		return err
	}
	return tx.Delete(recipe).Error
}

// resolveCategories loads the categories for the given ids and fails with
// ErrUnknownCategory when any id has no matching row.
func (s *RecipeService) resolveCategories(ctx context.Context, ids []uuid.UUID) ([]models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	var categories []models.Category
	if err := s.db.WithContext(ctx).Where("id IN ?", unique).Find(&categories).Error; err != nil {
		return nil, err
	}
	if len(categories) != len(unique) {
		return nil, ErrUnknownCategory
	}
	return categories, nil
}
