package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hungrypaws/hungry-paws-api/internal/httperr"
)

// paramID parses a numeric path parameter, writing the 400 itself so callers
// only check the flag.
func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}
