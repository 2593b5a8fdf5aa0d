// Package render writes the JSON envelope the storefront UI expects:
// success responses carry their payload inline, failures carry a message.
package render

import "github.com/gin-gonic/gin"

// OK writes {"success":true, ...payload} with the given status.
func OK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Message is a shorthand for success responses with only a message.
func Message(c *gin.Context, status int, msg string) {
	OK(c, status, gin.H{"message": msg})
}
