package service

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// Business-rule errors recovered at the handler boundary. Anything else that
// escapes a service is treated as an internal failure.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrNotRecipeAuthor = errors.New("not authorized to modify this recipe")
	ErrUnknownCategory = errors.New("one or more category ids do not exist")

	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryTitleTaken = errors.New("category with this title already exists")
	ErrCategoryInUse      = errors.New("cannot delete category with associated recipes")

	ErrAlreadyFavorited = errors.New("recipe already in favorites")
	ErrNotInFavorites   = errors.New("recipe not in favorites")
)

// IsUniqueViolation reports whether err is a unique-constraint violation from
// the database. The pre-check queries give the friendly error message on the
// fast path; the constraint remains the final authority under concurrency.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	// sqlite (test driver) reports constraint failures by message only.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsForeignKeyViolation reports whether err is a foreign-key violation.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
