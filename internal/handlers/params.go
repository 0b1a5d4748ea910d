package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses a positive integer path parameter, responding 400 itself
// when the value is malformed.
func pathID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid_"+name, fmt.Errorf("el parámetro %s debe ser un entero mayor a 0", name))
		return 0, false
	}
	return id, true
}
