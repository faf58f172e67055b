package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/app"
	"blogapi/internal/pagination"
	"blogapi/internal/validation"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestOKWrapsData(t *testing.T) {
	c, recorder := newTestContext(t)

	OK(c, gin.H{"id": 1})

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Contains(t, body, "data")
	assert.NotContains(t, body, "meta")
}

func TestCreatedStatus(t *testing.T) {
	c, recorder := newTestContext(t)

	Created(c, gin.H{"id": 1})

	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestNoContentEmptyBody(t *testing.T) {
	c, recorder := newTestContext(t)

	NoContent(c)
	// CreateTestContext has no engine to flush the buffered status at the
	// end of the handler chain, so flush it like a real request would.
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.Bytes())
}

func TestPaginatedIncludesMeta(t *testing.T) {
	c, recorder := newTestContext(t)
	meta := pagination.NewMeta(5, pagination.Query{Page: 1, PerPage: 10})

	Paginated(c, []int{1, 2, 3}, meta)

	body := decodeBody(t, recorder)
	metaBody, ok := body["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(5), metaBody["total"])
	assert.Equal(t, float64(1), metaBody["total_pages"])
	assert.Equal(t, float64(10), metaBody["per_page"])
}

func TestBadRequestBody(t *testing.T) {
	c, recorder := newTestContext(t)

	BadRequest(c, "invalid request payload")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Bad request", body["error"])
	assert.Equal(t, "invalid request payload", body["details"])
}

func TestValidationFailedBody(t *testing.T) {
	c, recorder := newTestContext(t)
	violations := []validation.Violation{
		{Field: "username", Messages: []string{"is required"}},
	}

	ValidationFailed(c, violations)

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Validation failed", body["error"])
	raw, ok := body["violations"].([]interface{})
	require.True(t, ok)
	require.Len(t, raw, 1)
	violation := raw[0].(map[string]interface{})
	assert.Equal(t, "username", violation["field"])
}

func TestBusinessErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantError   string
		wantDetails string
	}{
		{"not found", app.ErrNotFound, http.StatusNotFound, "Resource not found", ""},
		{
			"conflict keeps detail",
			&app.AlreadyExistsError{Detail: "Email already exists"},
			http.StatusConflict, "Conflict", "Email already exists",
		},
		{
			"store failure suppressed",
			errors.New("dial tcp 127.0.0.1:3306: connection refused"),
			http.StatusInternalServerError, "Internal server error", "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, recorder := newTestContext(t)

			BusinessError(c, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			body := decodeBody(t, recorder)
			assert.Equal(t, tt.wantError, body["error"])
			if tt.wantDetails == "" {
				assert.NotContains(t, body, "details")
			} else {
				assert.Equal(t, tt.wantDetails, body["details"])
			}
		})
	}
}

func TestBusinessErrorWrappedNotFound(t *testing.T) {
	c, recorder := newTestContext(t)

	BusinessError(c, errors.Join(errors.New("context"), app.ErrNotFound))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
