package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes the payload with a true success flag merged in.
func OK(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, wrap(payload))
}

func Created(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusCreated, wrap(payload))
}

func wrap(payload gin.H) gin.H {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return body
}
