package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/momokapoolz/calories-app-gateway/services"
)

// AuthMiddleware extracts the bearer access token id, resolves it against the
// session store and attaches the session to the request context. The token is
// an opaque identifier issued by the backend, not a JWT; the gateway never
// inspects it beyond the store lookup.
func AuthMiddleware(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}
		accessTokenID := strings.TrimPrefix(authHeader, "Bearer ")

		session, err := sessions.Resolve(c.Request.Context(), accessTokenID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set("userID", session.User.ID)
		c.Set("email", session.User.Email)
		c.Set("accessToken", accessTokenID)
		c.Next()
	}
}
