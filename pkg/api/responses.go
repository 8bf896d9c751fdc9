package api

import "github.com/gin-gonic/gin"

// Envelope is the uniform response body. Every endpoint, success or
// error, returns this shape so clients parse one structure.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// respondOK writes a 200 success envelope.
func respondOK(c *gin.Context, message string, data any) {
	c.JSON(200, Envelope{Status: "success", Message: message, Data: data})
}

// respondCreated writes a 201 success envelope.
func respondCreated(c *gin.Context, message string, data any) {
	c.JSON(201, Envelope{Status: "success", Message: message, Data: data})
}

// respondAccepted writes a 202 success envelope for work that continues
// asynchronously.
func respondAccepted(c *gin.Context, message string, data any) {
	c.JSON(202, Envelope{Status: "success", Message: message, Data: data})
}

// respondError writes an error envelope with the given HTTP status.
func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{Status: "error", Message: message})
}
