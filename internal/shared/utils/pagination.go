package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"triage/internal/shared/constants"
)

// ListWindow holds parsed skip/limit listing parameters.
type ListWindow struct {
	Skip  int
	Limit int
}

// ParseListWindow parses skip and limit query parameters from the Gin
// context. Skip defaults to 0, limit to DefaultListLimit; limit is capped
// at MaxListLimit. Negative or malformed values fall back to the defaults.
func ParseListWindow(c *gin.Context) ListWindow {
	skip := parseQueryInt(c, "skip", 0)
	limit := parseQueryInt(c, "limit", constants.DefaultListLimit)
	if limit < 1 {
		limit = constants.DefaultListLimit
	}
	if limit > constants.MaxListLimit {
		limit = constants.MaxListLimit
	}
	return ListWindow{Skip: skip, Limit: limit}
}

// parseQueryInt parses a non-negative integer query parameter with a
// default value.
func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 0 {
			return n
		}
	}
	return defaultVal
}
