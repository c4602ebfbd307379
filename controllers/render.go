package controllers

import (
	"net/http"

	"stayhub/constants"
	"stayhub/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// render executes an HTML template with the one-shot flash messages and the
// signed-in user merged into the data map. Reading flashes clears them, so
// the session is saved afterwards.
func render(ctx *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	session := sessions.Default(ctx)
	data["successFlashes"] = flashStrings(session.Flashes(constants.FlashSuccess))
	data["errorFlashes"] = flashStrings(session.Flashes(constants.FlashError))
	_ = session.Save()

	if user := currentUser(ctx); user != nil {
		data["currentUser"] = user
	}

	ctx.HTML(status, name, data)
}

func renderError(ctx *gin.Context, status int, message string) {
	render(ctx, status, "pages/error", gin.H{
		"status":  status,
		"message": message,
	})
}

// NotFound is the catch-all handler for unknown routes.
func NotFound(ctx *gin.Context) {
	renderError(ctx, http.StatusNotFound, constants.ErrPageNotFound)
}

func addFlash(ctx *gin.Context, category string, message string) {
	session := sessions.Default(ctx)
	session.AddFlash(message, category)
	_ = session.Save()
}

func currentUser(ctx *gin.Context) *models.User {
	raw, exists := ctx.Get(constants.ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := raw.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func flashStrings(flashes []interface{}) []string {
	messages := make([]string, 0, len(flashes))
	for _, flash := range flashes {
		if message, ok := flash.(string); ok {
			messages = append(messages, message)
		}
	}
	return messages
}
