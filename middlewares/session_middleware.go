package middlewares

import (
	"net/http"
	"os"

	"stayhub/constants"
	"stayhub/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SessionStore builds the cookie-backed session middleware. The cookie lives
// for seven days and is HttpOnly.
func SessionStore() gin.HandlerFunc {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = constants.DefaultSessionSecret
	}

	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
	})
	return sessions.Sessions(constants.SessionName, store)
}

// CurrentUser resolves the session's user id to a full user record and puts
// it on the context for handlers and templates. Stale sessions pointing at a
// deleted user are treated as logged out.
func CurrentUser(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session := sessions.Default(ctx)
		rawID := session.Get(constants.SessionUserKey)
		if rawID == nil {
			ctx.Next()
			return
		}

		userID, ok := rawID.(uint)
		if !ok {
			ctx.Next()
			return
		}

		user, err := authService.GetUserByID(userID)
		if err != nil {
			session.Delete(constants.SessionUserKey)
			_ = session.Save()
			ctx.Next()
			return
		}

		ctx.Set(constants.ContextUserKey, user)
		ctx.Next()
	}
}

// RequireLogin gates browser routes. Anonymous visitors get an error flash
// and are sent to the login page; the URL they wanted is remembered so login
// can return them to it.
func RequireLogin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, exists := ctx.Get(constants.ContextUserKey); exists {
			ctx.Next()
			return
		}

		session := sessions.Default(ctx)
		if ctx.Request.Method == http.MethodGet {
			session.Set(constants.SessionReturnTo, ctx.Request.URL.RequestURI())
		}
		session.AddFlash(constants.MsgLoginRequired, constants.FlashError)
		_ = session.Save()

		ctx.Redirect(http.StatusFound, "/login")
		ctx.Abort()
	}
}
