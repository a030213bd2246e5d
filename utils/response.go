package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the JSON error envelope used across the API.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
