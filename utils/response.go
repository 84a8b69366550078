package utils

import "github.com/gin-gonic/gin"

// JSONSuccess writes the API envelope every hoteldesk endpoint shares:
// {"success": true, "data": ...}. The invoice download is the one route
// that bypasses it, since it streams raw PDF bytes.
func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// JSONError is the failure half of the envelope; message is the
// user-facing error text, never an internal error string.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}
