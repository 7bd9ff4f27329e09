package response

import "github.com/gin-gonic/gin"

// Status sends a 200 response with a status message, the mock tracker's
// acknowledgement shape.
func Status(c *gin.Context, message string) {
	c.JSON(200, gin.H{"status": message})
}

// Error sends an error response as {"error": message}
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// NotFound sends a 404 not found response
func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

// InternalError sends a 500 internal server error response
func InternalError(c *gin.Context, message string) {
	Error(c, 500, message)
}
