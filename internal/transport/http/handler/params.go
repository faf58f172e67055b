package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"blogapi/internal/pagination"
	"blogapi/internal/transport/http/response"
)

// parseID reads the :id path parameter. On failure it writes the 400
// response and reports false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

// bindPagination reads page/per_page from the query string, applying
// defaults and clamps. On failure it writes the 400 response and reports
// false.
func bindPagination(c *gin.Context) (pagination.Query, bool) {
	var query pagination.Query
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid pagination parameters")
		return pagination.Query{}, false
	}
	query.Normalize()
	return query, true
}
