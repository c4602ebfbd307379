package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"stayhub/apperrors"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type IReviewController interface {
	Create(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ReviewController struct {
	service services.IReviewService
}

func NewReviewController(service services.IReviewService) IReviewController {
	return &ReviewController{service: service}
}

func (c *ReviewController) Create(ctx *gin.Context) {
	listingID, ok := paramID(ctx, "id")
	if !ok {
		renderError(ctx, http.StatusBadRequest, constants.ErrInvalidID)
		return
	}
	showPath := fmt.Sprintf("/listings/%d", listingID)

	var input dto.CreateReviewInput
	if err := ctx.ShouldBind(&input); err != nil {
		addFlash(ctx, constants.FlashError, "Review needs a rating from 1 to 5 and a comment")
		ctx.Redirect(http.StatusFound, showPath)
		return
	}

	_, err := c.service.Create(listingID, input, currentUser(ctx))
	if err != nil {
		if errors.Is(err, apperrors.ErrListingNotFound) {
			addFlash(ctx, constants.FlashError, constants.ErrListingNotFound)
			ctx.Redirect(http.StatusFound, "/listings")
			return
		}
		log.WithField("error", err.Error()).Error("create review failed")
		renderError(ctx, http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	addFlash(ctx, constants.FlashSuccess, constants.MsgReviewCreated)
	ctx.Redirect(http.StatusFound, showPath)
}

func (c *ReviewController) Delete(ctx *gin.Context) {
	listingID, ok := paramID(ctx, "id")
	if !ok {
		renderError(ctx, http.StatusBadRequest, constants.ErrInvalidID)
		return
	}
	reviewID, ok := paramID(ctx, "reviewID")
	if !ok {
		renderError(ctx, http.StatusBadRequest, constants.ErrInvalidID)
		return
	}
	showPath := fmt.Sprintf("/listings/%d", listingID)

	err := c.service.Delete(listingID, reviewID, currentUser(ctx))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrReviewNotFound):
			addFlash(ctx, constants.FlashError, "Review not found")
			ctx.Redirect(http.StatusFound, showPath)
		case errors.Is(err, apperrors.ErrNotOwner):
			addFlash(ctx, constants.FlashError, constants.MsgNoPermission)
			ctx.Redirect(http.StatusFound, showPath)
		default:
			log.WithField("error", err.Error()).Error("delete review failed")
			renderError(ctx, http.StatusInternalServerError, constants.ErrUnexpected)
		}
		return
	}

	addFlash(ctx, constants.FlashSuccess, constants.MsgReviewDeleted)
	ctx.Redirect(http.StatusFound, showPath)
}
