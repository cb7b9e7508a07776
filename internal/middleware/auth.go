package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"shoplite_back_end/internal/httperr"
	"shoplite_back_end/internal/token"
)

const claimsKey = "auth_claims"

// AuthRequired verifies the bearer token and stores the decoded claims in
// the request scope. Handlers read them with ClaimsFrom and pass them down
// explicitly; nothing identity-related is ever read from globals.
func AuthRequired(signer *token.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, httperr.Unauthorized("Missing Authorization header"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			httperr.Abort(c, httperr.Unauthorized("Invalid Authorization header format"))
			return
		}

		claims, err := signer.Verify(parts[1])
		if err != nil {
			httperr.Abort(c, httperr.Unauthorized("Invalid or expired token"))
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

func ClaimsFrom(c *gin.Context) (*token.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*token.Claims)
	return claims, ok
}
