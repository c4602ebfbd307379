package middlewares

import (
	"net/http"
	"strings"

	"stayhub/constants"
	"stayhub/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireRole allows only users whose role is in allowedRoles. It assumes
// CurrentUser and RequireLogin already ran; the role is read from the
// database-backed user on the context, not from any token.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw, exists := ctx.Get(constants.ContextUserKey)
		if !exists {
			ctx.Redirect(http.StatusFound, "/login")
			ctx.Abort()
			return
		}

		user, ok := raw.(*models.User)
		if !ok {
			ctx.Redirect(http.StatusFound, "/login")
			ctx.Abort()
			return
		}

		userRole := strings.TrimSpace(strings.ToLower(user.Role))
		for _, allowedRole := range allowedRoles {
			if userRole == strings.TrimSpace(strings.ToLower(allowedRole)) {
				ctx.Next()
				return
			}
		}

		session := sessions.Default(ctx)
		session.AddFlash(constants.MsgNoPermission, constants.FlashError)
		_ = session.Save()
		ctx.Redirect(http.StatusFound, "/listings")
		ctx.Abort()
	}
}
