package middlewares

import (
	"net/http"
	"strings"

	"stayhub/constants"
	"stayhub/services"

	"github.com/gin-gonic/gin"
)

// APIAuthMiddleware guards the JSON API with bearer access tokens.
func APIAuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		user, err := authService.GetUserFromToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		ctx.Set(constants.ContextUserKey, user)
		ctx.Next()
	}
}
