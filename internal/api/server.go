// Package api implements the NoteVault REST surface on gin. Handlers
// validate requests, delegate to the store, and map storage errors to
// status codes. The store is injected at construction; nothing here
// holds global state.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/xenomorphXX121/NoteVault/internal/sqlite"
)

// Server wires the HTTP handlers to a store.
type Server struct {
	store *sqlite.Store
	log   zerolog.Logger
}

// NewServer creates a Server backed by the given store.
func NewServer(store *sqlite.Store, log zerolog.Logger) *Server {
	return &Server{store: store, log: log}
}

// Router builds the gin engine with middleware and all routes mounted
// under /api.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(s.log))
	router.Use(CORS())

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", s.handleHealth)

		categories := apiGroup.Group("/categories")
		{
			categories.GET("", s.handleListCategories)
			categories.POST("", s.handleCreateCategory)
			categories.PUT("/:id", s.handleUpdateCategory)
			categories.DELETE("/:id", s.handleDeleteCategory)
		}

		notes := apiGroup.Group("/notes")
		{
			notes.GET("", s.handleListNotes)
			notes.GET("/:id", s.handleGetNote)
			notes.POST("", s.handleCreateNote)
			notes.PUT("/:id", s.handleUpdateNote)
			notes.DELETE("/:id", s.handleDeleteNote)
		}
	}

	return router
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
