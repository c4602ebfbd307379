package controllers

import (
	"errors"
	"net/http"
	"strings"

	"stayhub/apperrors"
	"stayhub/dto"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type IAPIAuthController interface {
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type APIAuthController struct {
	service services.IAuthService
}

func NewAPIAuthController(service services.IAuthService) IAPIAuthController {
	return &APIAuthController{service: service}
}

func (c *APIAuthController) Login(ctx *gin.Context) {
	var input dto.APILoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.service.Login(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error"})
		return
	}

	accessToken, err := c.service.CreateAccessToken(user)
	if err != nil {
		log.WithField("error", err.Error()).Error("create access token failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error"})
		return
	}

	ctx.JSON(http.StatusOK, dto.APILoginResponse{AccessToken: accessToken})
}

func (c *APIAuthController) Logout(ctx *gin.Context) {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}
	if !strings.HasPrefix(header, "Bearer ") {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		return
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	if err := c.service.RevokeToken(tokenString); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}
