package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/recipehub/backend/config"
	"github.com/recipehub/backend/internal/api"
	"github.com/recipehub/backend/internal/middleware"
	"github.com/recipehub/backend/internal/service"
)

// Server wires the HTTP surface together: router, services, lifecycle.
type Server struct {
	engine *gin.Engine
	http   *http.Server
	db     *gorm.DB
	cfg    *config.Config
	logger zerolog.Logger
}

// New constructs a fully wired server. rdb may be nil; the token denylist
// then degrades to a no-op.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, logger zerolog.Logger) *Server {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS(cfg.AllowedOrigins))

	denylist := service.NewTokenDenylist(rdb)
	authService := service.NewAuthService(db, cfg.JWTSecret, denylist)
	recipeService := service.NewRecipeService(db)
	categoryService := service.NewCategoryService(db)
	favoriteService := service.NewFavoriteService(db)
	userService := service.NewUserService(db)

	s := &Server{
		engine: engine,
		db:     db,
		cfg:    cfg,
		logger: logger,
	}

	engine.GET("/", s.welcome)
	engine.GET("/api/health", s.health)

	root := engine.Group("/api")
	api.NewAuthHandler(authService).RegisterRoutes(root)
	api.NewRecipeHandler(recipeService, authService).RegisterRoutes(root)
	api.NewCategoryHandler(categoryService, authService).RegisterRoutes(root)
	api.NewFavoriteHandler(favoriteService, authService).RegisterRoutes(root)
	api.NewUserHandler(userService, recipeService, authService).RegisterRoutes(root)

	return s
}

// Engine exposes the router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start blocks serving HTTP until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.engine,
	}

	s.logger.Info().Str("addr", s.http.Addr).Msg("server listening")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Welcome to the RecipeHub API!",
		"version": "1.0.0",
		"endpoints": gin.H{
			"auth":       "/api/auth",
			"recipes":    "/api/recipes",
			"categories": "/api/categories",
			"favorites":  "/api/favorites",
			"user":       "/api/user",
			"health":     "/api/health",
		},
	})
}

func (s *Server) health(c *gin.Context) {
	dbStatus := "up"
	if sqlDB, err := s.db.DB(); err != nil {
		dbStatus = "down"
	} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		dbStatus = "down"
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Server is running",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": s.cfg.Environment,
		"database":    dbStatus,
	})
}
