// utils/respond.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the {status, message} error contract.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "error", "message": message})
}
