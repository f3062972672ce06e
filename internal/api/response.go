package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/xenomorphXX121/NoteVault/pkg/types"
)

// errorResponse is the JSON body for all failure statuses. Fields
// carries per-field detail for validation failures.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: message})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, errorResponse{Error: message})
}

func internalError(c *gin.Context) {
	// No detail leaks past the boundary; the cause is logged upstream.
	c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

// bindingError responds 400 with field-level detail when the bind
// failure carries validator information, or a generic message otherwise.
func bindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
		return
	}
	badRequest(c, "invalid request body")
}

// storeError maps storage errors to responses: absent entities become
// 404, bad references 400, anything else a generic 500.
func (s *Server) storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, types.ErrNotFound):
		notFound(c, "not found")
	case errors.Is(err, types.ErrCategoryNotFound):
		badRequest(c, "category not found")
	case errors.Is(err, types.ErrInvalidID):
		badRequest(c, "invalid id")
	default:
		s.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("storage failure")
		internalError(c)
	}
}
