package handler

import (
	"github.com/NeerajSh-16/ai-mock-interviews/internal/auth"
	"github.com/NeerajSh-16/ai-mock-interviews/pkg/response"
	"github.com/gin-gonic/gin"
)

// RequireAuth extracts the bearer credential, verifies it and stores the
// claims on the request context. It aborts with 401 before any collaborator
// is touched.
func (app *Application) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			response.Unauthorized(c, err.Error())
			c.Abort()
			return
		}

		claims, err := app.Tokens.VerifyToken(token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}
