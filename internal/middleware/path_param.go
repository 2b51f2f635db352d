package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PathIDKey holds the parsed numeric path id in the gin context
const PathIDKey = "pathID"

// NotFoundBody is the body written for unmatched routes
var NotFoundBody = gin.H{"error": "not found"}

// NumericID only lets a request through when the named path parameter is a
// non-negative decimal that fits int64. Anything else is answered as an
// unmatched route.
func NumericID(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(param)
		if !isDigits(raw) {
			c.AbortWithStatusJSON(http.StatusNotFound, NotFoundBody)
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, NotFoundBody)
			return
		}

		c.Set(PathIDKey, id)
		c.Next()
	}
}

// ParseInt also accepts a leading sign, so the digits are checked first
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
