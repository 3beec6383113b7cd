package delivery

import (
	"net/http"

	"userhub-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards routes behind a bearer token. The pipeline is
// extract -> verify signature -> decode claims -> account lookup; the
// lookup never runs on a payload whose signature was not checked.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := authUsecase.ExtractTokenFromRequest(c.Request)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		claims, err := authUsecase.ParseToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		user, err := authUsecase.ValidateUser(claims)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}
