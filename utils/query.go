package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultPerPage = 10

// QueryFilters picks the allow-listed filter values off the request. The
// allowed map is query-param -> column; anything else on the query string is
// ignored. Empty values do not filter.
func QueryFilters(c *gin.Context, allowed map[string]string) map[string]string {
	filters := make(map[string]string)
	for param, column := range allowed {
		if v := c.Query(param); v != "" {
			filters[column] = v
		}
	}
	return filters
}

// PageParams reads page/per_page, falling back to page 1 and 10 per page.
func PageParams(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if perPage < 1 {
		perPage = defaultPerPage
	}
	return page, perPage
}

// IDParam parses the numeric path parameter with the given name.
func IDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
