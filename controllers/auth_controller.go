package controllers

import (
	"errors"
	"net/http"

	"stayhub/apperrors"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type IAuthController interface {
	ShowSignup(ctx *gin.Context)
	Signup(ctx *gin.Context)
	ShowLogin(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) ShowSignup(ctx *gin.Context) {
	render(ctx, http.StatusOK, "auth/signup", nil)
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var input dto.SignupInput
	if err := ctx.ShouldBind(&input); err != nil {
		addFlash(ctx, constants.FlashError, constants.ErrInvalidInput)
		ctx.Redirect(http.StatusFound, "/signup")
		return
	}

	user, err := c.service.Signup(input)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateUser) {
			addFlash(ctx, constants.FlashError, "Username or email already taken")
			ctx.Redirect(http.StatusFound, "/signup")
			return
		}
		log.WithField("error", err.Error()).Error("signup failed")
		addFlash(ctx, constants.FlashError, constants.ErrUnexpected)
		ctx.Redirect(http.StatusFound, "/signup")
		return
	}

	// new users are logged in right away
	logIn(ctx, user)
	addFlash(ctx, constants.FlashSuccess, constants.MsgWelcome)
	ctx.Redirect(http.StatusFound, "/listings")
}

func (c *AuthController) ShowLogin(ctx *gin.Context) {
	render(ctx, http.StatusOK, "auth/login", nil)
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBind(&input); err != nil {
		addFlash(ctx, constants.FlashError, constants.ErrInvalidInput)
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := c.service.Login(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			addFlash(ctx, constants.FlashError, "Invalid username or password")
		} else {
			log.WithField("error", err.Error()).Error("login failed")
			addFlash(ctx, constants.FlashError, constants.ErrUnexpected)
		}
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	logIn(ctx, user)
	addFlash(ctx, constants.FlashSuccess, constants.MsgLoggedIn)
	ctx.Redirect(http.StatusFound, takeReturnTo(ctx))
}

func (c *AuthController) Logout(ctx *gin.Context) {
	session := sessions.Default(ctx)
	session.Delete(constants.SessionUserKey)
	_ = session.Save()

	addFlash(ctx, constants.FlashSuccess, constants.MsgLoggedOut)
	ctx.Redirect(http.StatusFound, "/listings")
}

func logIn(ctx *gin.Context, user *models.User) {
	session := sessions.Default(ctx)
	session.Set(constants.SessionUserKey, user.ID)
	_ = session.Save()
}

// takeReturnTo consumes the URL stored by the login gate, falling back to
// the listings index.
func takeReturnTo(ctx *gin.Context) string {
	session := sessions.Default(ctx)
	raw := session.Get(constants.SessionReturnTo)
	if raw == nil {
		return "/listings"
	}
	session.Delete(constants.SessionReturnTo)
	_ = session.Save()

	target, ok := raw.(string)
	if !ok || target == "" {
		return "/listings"
	}
	return target
}
