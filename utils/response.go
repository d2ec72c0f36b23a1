package utils

import "github.com/gin-gonic/gin"

func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// JSONNoResults is the "no results for these filters" shape, distinct from a
// by-id not-found response.
func JSONNoResults(c *gin.Context, message string) {
	c.JSON(404, gin.H{"message": message, "code": 404})
}

func JSONFieldErrors(c *gin.Context, fields map[string][]string) {
	c.JSON(400, fields)
}
