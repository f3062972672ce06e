package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xenomorphXX121/NoteVault/pkg/types"
)

type createNoteRequest struct {
	Title      string   `json:"title" binding:"required"`
	Content    string   `json:"content"`
	CategoryID string   `json:"categoryId" binding:"required"`
	Tags       []string `json:"tags"`
}

type updateNoteRequest struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	CategoryID *string   `json:"categoryId"`
	Tags       *[]string `json:"tags"`
}

// handleListNotes returns notes most recently updated first, narrowed by
// the optional categoryId and search query parameters.
func (s *Server) handleListNotes(c *gin.Context) {
	filter := types.NoteFilter{
		CategoryID: c.Query("categoryId"),
		Search:     c.Query("search"),
	}

	notes, err := s.store.ListNotes(filter)
	if err != nil {
		s.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

func (s *Server) handleGetNote(c *gin.Context) {
	note, err := s.store.GetNote(c.Param("id"))
	if err != nil {
		s.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

func (s *Server) handleCreateNote(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	note, err := s.store.CreateNote(req.Title, req.Content, req.CategoryID, req.Tags)
	if err != nil {
		s.storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, note)
}

func (s *Server) handleUpdateNote(c *gin.Context) {
	var req updateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	patch := types.NotePatch{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
	}
	note, err := s.store.UpdateNote(c.Param("id"), patch)
	if err != nil {
		s.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

func (s *Server) handleDeleteNote(c *gin.Context) {
	if err := s.store.DeleteNote(c.Param("id")); err != nil {
		s.storeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
