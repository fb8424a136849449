package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"store-console/internal/core/auth"
	resp "store-console/internal/transport/http/response"
)

const KeyClaims = "claims"

func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.AbortErr(c, http.StatusUnauthorized, "Token required")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.AbortErr(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		c.Set(KeyClaims, claims)
		c.Next()
	}
}

// ClaimsFrom 仅在 AuthJWT 之后的 handler 里调用
func ClaimsFrom(c *gin.Context) *auth.Claims {
	v, _ := c.Get(KeyClaims)
	claims, _ := v.(*auth.Claims)
	return claims
}
