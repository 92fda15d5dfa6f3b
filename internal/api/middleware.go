package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HeaderUserID carries the caller's identity. It is trusted as-is: the
// gateway in front of this service is expected to have authenticated the
// caller and injected the header.
const HeaderUserID = "X-User-ID"

// abortWithError sends a standardized JSON error response and stops the chain.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// userIDFromHeader returns the caller identity header, which may be empty.
func userIDFromHeader(c *gin.Context) string {
	return c.GetHeader(HeaderUserID)
}

// requireUserID aborts with 400 when the identity header is missing.
func requireUserID(c *gin.Context) (string, bool) {
	userID := userIDFromHeader(c)
	if userID == "" {
		abortWithError(c, http.StatusBadRequest, "Missing "+HeaderUserID+" header")
		return "", false
	}
	return userID, true
}
