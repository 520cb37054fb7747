package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipehub/backend/internal/models"
	"github.com/recipehub/backend/internal/service"
	"github.com/recipehub/backend/internal/testhelpers"
)

func strPtr(s string) *string { return &s }

func TestUpdateProfile(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	users := service.NewUserService(db)
	ctx := context.Background()

	ana := testhelpers.CreateUser(t, db, "ana@example.com", "secret123", "Ana")

	updated, err := users.UpdateProfile(ctx, ana.ID, service.ProfileUpdate{
		Name:  strPtr("Ana Maria"),
		Email: strPtr("ana.maria@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Equal(t, "ana.maria@example.com", updated.Email)

	// Omitted fields keep their value.
	updated, err = users.UpdateProfile(ctx, ana.ID, service.ProfileUpdate{Name: strPtr("Ana")})
	require.NoError(t, err)
	assert.Equal(t, "Ana", updated.Name)
	assert.Equal(t, "ana.maria@example.com", updated.Email)
}

func TestUpdateProfileEmailInUse(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	users := service.NewUserService(db)
	ctx := context.Background()

	ana := testhelpers.CreateUser(t, db, "ana@example.com", "secret123", "Ana")
	testhelpers.CreateUser(t, db, "bob@example.com", "secret123", "Bob")

	_, err := users.UpdateProfile(ctx, ana.ID, service.ProfileUpdate{Email: strPtr("bob@example.com")})
	assert.ErrorIs(t, err, service.ErrEmailTaken)

	// Re-submitting your own email is fine.
	_, err = users.UpdateProfile(ctx, ana.ID, service.ProfileUpdate{Email: strPtr("ana@example.com")})
	assert.NoError(t, err)
}

func TestChangePassword(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	users := service.NewUserService(db)
	auth := service.NewAuthService(db, testSecret, service.NewTokenDenylist(nil))
	ctx := context.Background()

	ana, _, err := auth.Register(ctx, "ana@example.com", "secret123", "Ana")
	require.NoError(t, err)

	err = users.ChangePassword(ctx, ana.ID, "wrongpass", "newpass456")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	require.NoError(t, users.ChangePassword(ctx, ana.ID, "secret123", "newpass456"))

	_, _, err = auth.Login(ctx, "ana@example.com", "secret123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, _, err = auth.Login(ctx, "ana@example.com", "newpass456")
	assert.NoError(t, err)
}

func TestDeleteAccount(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	users := service.NewUserService(db)
	favorites := service.NewFavoriteService(db)
	ctx := context.Background()

	ana := testhelpers.CreateUser(t, db, "ana@example.com", "secret123", "Ana")
	bob := testhelpers.CreateUser(t, db, "bob@example.com", "secret123", "Bob")
	italian := testhelpers.CreateCategory(t, db, "Italian", "#f5428d")

	carbonara := testhelpers.CreateRecipe(t, db, ana, "Carbonara", *italian)
	goulash := testhelpers.CreateRecipe(t, db, bob, "Goulash")

	// Ana favorites Bob's recipe, Bob favorites Ana's.
	require.NoError(t, favorites.Add(ctx, ana.ID, goulash.ID))
	require.NoError(t, favorites.Add(ctx, bob.ID, carbonara.ID))

	require.NoError(t, users.DeleteAccount(ctx, ana.ID))

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", ana.ID).Count(&userCount).Error)
	assert.Zero(t, userCount)

	// Ana's recipes are gone along with every favorite pointing at them.
	var recipeCount int64
	require.NoError(t, db.Model(&models.Recipe{}).Where("author_id = ?", ana.ID).Count(&recipeCount).Error)
	assert.Zero(t, recipeCount)

	var favCount int64
	require.NoError(t, db.Model(&models.Favorite{}).
		Where("user_id = ? OR recipe_id = ?", ana.ID, carbonara.ID).
		Count(&favCount).Error)
	assert.Zero(t, favCount)

	var joinCount int64
	require.NoError(t, db.Table("recipe_categories").Where("recipe_id = ?", carbonara.ID).Count(&joinCount).Error)
	assert.Zero(t, joinCount)

	// Bob and his recipe are untouched.
	bobs, err := service.NewRecipeService(db).ListByAuthor(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, bobs, 1)
}

func TestDeleteAccountMissingUser(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	users := service.NewUserService(db)

	ana := testhelpers.CreateUser(t, db, "ana@example.com", "secret123", "Ana")
	require.NoError(t, users.DeleteAccount(context.Background(), ana.ID))

	err := users.DeleteAccount(context.Background(), ana.ID)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
