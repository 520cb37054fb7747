package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/recipehub/backend/internal/service"
)

// All success responses use the {success:true, data|message} envelope; all
// failures use {success:false, message}.

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

func respondValidationError(c *gin.Context, err error) {
	log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("request validation failed")
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
}

// respondError translates service errors into HTTP status codes. Business
// rules map to 400/403/404; untranslated persistence failures fall back to
// the generic translations and everything else is a bare 500.
func respondError(c *gin.Context, err error) {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
	}
	c.JSON(status, gin.H{"success": false, "message": message})
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrRecipeNotFound),
		errors.Is(err, service.ErrCategoryNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrNotRecipeAuthor):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUnknownCategory),
		errors.Is(err, service.ErrCategoryTitleTaken),
		errors.Is(err, service.ErrCategoryInUse),
		errors.Is(err, service.ErrAlreadyFavorited),
		errors.Is(err, service.ErrNotInFavorites):
		return http.StatusBadRequest, err.Error()
	case service.IsUniqueViolation(err):
		return http.StatusConflict, "a record with this value already exists"
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, "record not found"
	}
	return http.StatusInternalServerError, "internal server error"
}
