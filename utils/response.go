package utils

import "github.com/gin-gonic/gin"

// JSONMessage writes the Message envelope every confirmation and error uses.
func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"Message": message})
}
