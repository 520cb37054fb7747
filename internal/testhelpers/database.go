package testhelpers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/recipehub/backend/config"
	"github.com/recipehub/backend/internal/database"
	"github.com/recipehub/backend/internal/models"
	"github.com/recipehub/backend/internal/server"
)

// NewTestDB opens an in-memory sqlite database migrated to the current
// schema. Each test gets its own named database so parallel tests cannot
// see each other's rows.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

// NewTestServer builds a fully wired server over an in-memory database and
// returns its router for httptest driving.
func NewTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	db := NewTestDB(t)
	cfg := &config.Config{
		Environment: "test",
		JWTSecret:   "test-secret",
	}
	srv := server.New(cfg, db, nil, zerolog.Nop())
	return srv.Engine(), db
}

// CreateUser persists a user with a bcrypt hash of the given password.
func CreateUser(t *testing.T, db *gorm.DB, email, password, name string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Email: email, PasswordHash: string(hash), Name: name}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// CreateCategory persists a category.
func CreateCategory(t *testing.T, db *gorm.DB, title, color string) *models.Category {
	t.Helper()

	category := models.Category{Title: title, Color: color}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

// CreateRecipe persists a recipe owned by author, linked to the given
// categories.
func CreateRecipe(t *testing.T, db *gorm.DB, author *models.User, title string, categories ...models.Category) *models.Recipe {
	t.Helper()

	recipe := models.Recipe{
		Title:       title,
		Duration:    30,
		Ingredients: models.StringArray{"flour", "water"},
		Steps:       models.StringArray{"mix", "bake"},
		AuthorID:    author.ID,
		Categories:  categories,
	}
	require.NoError(t, db.Create(&recipe).Error)
	return &recipe
}
