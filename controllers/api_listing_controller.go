package controllers

import (
	"errors"
	"net/http"

	"stayhub/apperrors"
	"stayhub/constants"
	"stayhub/services"

	"github.com/gin-gonic/gin"
)

type IAPIListingController interface {
	Index(ctx *gin.Context)
	Show(ctx *gin.Context)
}

type APIListingController struct {
	service services.IListingService
	reviews services.IReviewService
}

func NewAPIListingController(service services.IListingService, reviews services.IReviewService) IAPIListingController {
	return &APIListingController{service: service, reviews: reviews}
}

func (c *APIListingController) Index(ctx *gin.Context) {
	listings, err := c.service.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": listings})
}

func (c *APIListingController) Show(ctx *gin.Context) {
	listingID, ok := paramID(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	listing, err := c.service.FindByID(listingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrListingNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrListingNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	summary, err := c.reviews.Summary(listingID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": listing, "summary": summary})
}
