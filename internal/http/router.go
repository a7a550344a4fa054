package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/readonly"
)

// RouterConfig holds the dependencies of NewRouter.
type RouterConfig struct {
	// Database backs the health check. May be nil.
	Database *database.Database
	Library  Library
	// ReadOnly blocks write requests when enabled. May be nil.
	ReadOnly *readonly.Middleware
	Version  string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(SecurityHeadersMiddleware())

	if cfg.ReadOnly != nil {
		router.Use(cfg.ReadOnly.InjectContext())
		if cfg.ReadOnly.IsEnabled() {
			router.Use(cfg.ReadOnly.Handler())
		}
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	usersController := NewUsersController(cfg.Library)
	booksController := NewBooksController(cfg.Library)
	readingListController := NewReadingListController(cfg.Library)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)

	api := router.Group("/api")

	api.POST("/users", usersController.CreateUser)

	api.POST("/books", booksController.AddBook)
	api.GET("/books/search", booksController.SearchBooks)
	api.POST("/books/:bookId", booksController.UpdateBook)

	api.POST("/reading-list", readingListController.AddToReadingList)
	api.GET("/reading-list/:userId", readingListController.GetReadingList)
	api.POST("/reading-list/:readingListId", readingListController.RemoveFromReadingList)

	return router
}
