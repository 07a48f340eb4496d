package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/momokapoolz/calories-app-gateway/services"
)

// userIDFromCtx reads the user id set by the auth middleware.
func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// tokenFromCtx reads the access token id set by the auth middleware.
func tokenFromCtx(c *gin.Context) string {
	return c.GetString("accessToken")
}

// idParam parses a numeric path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(n), true
}

// respondError renders a service error. Backend error bodies are forwarded
// verbatim with their original status; only errors that never produced a
// body get a synthesized message.
func respondError(c *gin.Context, err error) {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		if len(apiErr.Raw) > 0 {
			c.Data(apiErr.Status, "application/json", apiErr.Raw)
			return
		}
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
