package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xenomorphXX121/NoteVault/pkg/types"
)

type createCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

type updateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color" binding:"omitempty,hexcolor"`
}

// handleListCategories returns all categories in creation order with
// their derived note counts.
func (s *Server) handleListCategories(c *gin.Context) {
	categories, err := s.store.ListCategories()
	if err != nil {
		s.storeError(c, err)
		return
	}

	counts, err := s.store.NoteCountsByCategory()
	if err != nil {
		s.storeError(c, err)
		return
	}
	for _, cat := range categories {
		cat.NoteCount = counts[cat.ID]
	}

	c.JSON(http.StatusOK, categories)
}

func (s *Server) handleCreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	category, err := s.store.CreateCategory(req.Name, req.Color)
	if err != nil {
		s.storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (s *Server) handleUpdateCategory(c *gin.Context) {
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	patch := types.CategoryPatch{Name: req.Name, Color: req.Color}
	category, err := s.store.UpdateCategory(c.Param("id"), patch)
	if err != nil {
		s.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (s *Server) handleDeleteCategory(c *gin.Context) {
	if err := s.store.DeleteCategory(c.Param("id")); err != nil {
		s.storeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
