// Package response shapes every HTTP body the API emits: the {data, meta?}
// success envelope and the transport error forms, including the total
// mapping from business-tier errors to status codes.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gookit/slog"

	"blogapi/internal/app"
	"blogapi/internal/pagination"
	"blogapi/internal/validation"
)

// Envelope is the uniform success body.
type Envelope struct {
	Data interface{}      `json:"data"`
	Meta *pagination.Meta `json:"meta,omitempty"`
}

type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type ValidationErrorBody struct {
	Error      string                 `json:"error"`
	Violations []validation.Violation `json:"violations"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Data: data})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Paginated(c *gin.Context, data interface{}, meta pagination.Meta) {
	c.JSON(http.StatusOK, Envelope{Data: data, Meta: &meta})
}

// BadRequest rejects malformed input: a body that cannot be parsed into
// the expected shape, or an unusable path/query parameter.
func BadRequest(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: "Bad request", Details: details})
}

func ValidationFailed(c *gin.Context, violations []validation.Violation) {
	c.JSON(http.StatusUnprocessableEntity, ValidationErrorBody{
		Error:      "Validation failed",
		Violations: violations,
	})
}

// BusinessError maps a business-tier error onto its transport form. The
// mapping is total: not-found and conflict keep their detail, everything
// else is an internal failure whose detail is logged server-side only.
func BusinessError(c *gin.Context, err error) {
	var conflict *app.AlreadyExistsError
	switch {
	case errors.Is(err, app.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorBody{Error: "Resource not found"})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, ErrorBody{Error: "Conflict", Details: conflict.Detail})
	default:
		slog.Errorf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal server error"})
	}
}
