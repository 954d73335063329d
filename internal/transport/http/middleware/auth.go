package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/4-in-a-row/engine/pkg/auth"
	"github.com/rs/zerolog/log"
)

// ClientKey is the gin context key holding the authenticated client name.
const ClientKey = "client"

// AuthMiddleware requires a valid bearer token signed with secret. The token
// may also come from the "token" query parameter, which browsers need for
// WebSocket upgrades. An empty secret disables the check.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		tokenString, err := auth.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ValidateAccessToken(tokenString, secret)
		if err != nil {
			log.Debug().Str("component", "auth").Err(err).Msg("rejected token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ClientKey, claims.Client)
		c.Next()
	}
}
