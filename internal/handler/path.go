package handler

import (
	"errors"
	"strconv"

	"adboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Helper to get the numeric path id, preferring the value parsed by the guard
func getPathID(c *gin.Context) (int64, error) {
	if idVal, exists := c.Get(middleware.PathIDKey); exists {
		id, ok := idVal.(int64)
		if !ok {
			return 0, errors.New("invalid path id type in context")
		}
		return id, nil
	}
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
