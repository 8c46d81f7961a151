package httpx

import (
	"github.com/gin-gonic/gin"
)

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: order not found
	Error string `json:"error"`
}

// Fail aborts with status and the error body. err, when non-nil, is kept on
// the context for the access log.
func Fail(c *gin.Context, status int, msg string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, HTTPError{Error: msg})
}
