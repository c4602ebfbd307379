package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"stayhub/apperrors"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type IListingController interface {
	Home(ctx *gin.Context)
	Index(ctx *gin.Context)
	New(ctx *gin.Context)
	Create(ctx *gin.Context)
	Show(ctx *gin.Context)
	Edit(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ListingController struct {
	service services.IListingService
	reviews services.IReviewService
}

func NewListingController(service services.IListingService, reviews services.IReviewService) IListingController {
	return &ListingController{service: service, reviews: reviews}
}

func (c *ListingController) Home(ctx *gin.Context) {
	render(ctx, http.StatusOK, "pages/home", nil)
}

func (c *ListingController) Index(ctx *gin.Context) {
	filter := dto.ListingFilter{
		Query: ctx.Query("q"),
	}
	if v, err := strconv.ParseFloat(ctx.Query("min_price"), 64); err == nil {
		filter.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(ctx.Query("max_price"), 64); err == nil {
		filter.MaxPrice = &v
	}
	filter.Page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if filter.Page < 1 {
		filter.Page = 1
	}

	listings, total, err := c.service.Find(filter, constants.ListingPageSize)
	if err != nil {
		log.WithField("error", err.Error()).Error("listing index failed")
		renderError(ctx, http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	totalPages := int((total + constants.ListingPageSize - 1) / constants.ListingPageSize)
	render(ctx, http.StatusOK, "listings/index", gin.H{
		"listings":   listings,
		"total":      total,
		"page":       filter.Page,
		"totalPages": totalPages,
		"prevPage":   filter.Page - 1,
		"nextPage":   filter.Page + 1,
		"query":      ctx.Query("q"),
		"minPrice":   ctx.Query("min_price"),
		"maxPrice":   ctx.Query("max_price"),
	})
}

func (c *ListingController) New(ctx *gin.Context) {
	render(ctx, http.StatusOK, "listings/new", nil)
}

func (c *ListingController) Create(ctx *gin.Context) {
	user := currentUser(ctx)

	var input dto.CreateListingInput
	if err := ctx.ShouldBind(&input); err != nil {
		addFlash(ctx, constants.FlashError, constants.ErrInvalidInput)
		ctx.Redirect(http.StatusFound, "/listings/new")
		return
	}

	newListing, err := c.service.Create(input, formImage(ctx), user)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedImage) {
			addFlash(ctx, constants.FlashError, "Image must be a jpg, png or webp file")
			ctx.Redirect(http.StatusFound, "/listings/new")
			return
		}
		log.WithField("error", err.Error()).Error("create listing failed")
		renderError(ctx, http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	addFlash(ctx, constants.FlashSuccess, constants.MsgListingCreated)
	ctx.Redirect(http.StatusFound, fmt.Sprintf("/listings/%d", newListing.ID))
}

func (c *ListingController) Show(ctx *gin.Context) {
	listingID, ok := paramID(ctx, "id")
	if !ok {
		renderError(ctx, http.StatusBadRequest, constants.ErrInvalidID)
		return
	}

	listing, err := c.service.FindByID(listingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrListingNotFound) {
			addFlash(ctx, constants.FlashError, constants.ErrListingNotFound)
			ctx.Redirect(http.StatusFound, "/listings")
			return
		}
		renderError(ctx, http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	summary, err := c.reviews.Summary(listingID)
	if err != nil {
		renderError(ctx, http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	render(ctx, http.StatusOK, "listings/show", gin.H{
		"listing": listing,
		"summary": summary,
	})
}

func (c *ListingController) Edit(ctx *gin.Context) {
	listingID, ok := paramID(ctx, "id")
	if !ok {
		renderError(ctx, http.StatusBadRequest, constants.ErrInvalidID)
		return
	}

	listing, err := c.service.FindByID(listingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrListingNotFound) {
			addFlash(ctx, constants.FlashError, constants.ErrListingNotFound)
			ctx.Redirect(http.StatusFound, "/listings")
			return
		}
		renderError(ctx, http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	user := currentUser(ctx)
	if user.ID != listing.UserID && !user.IsAdmin() {
		addFlash(ctx, constants.FlashError, constants.MsgNoPermission)
		ctx.Redirect(http.StatusFound, fmt.Sprintf("/listings/%d", listingID))
		return
	}

	render(ctx, http.StatusOK, "listings/edit", gin.H{"listing": listing})
}

func (c *ListingController) Update(ctx *gin.Context) {
	listingID, ok := paramID(ctx, "id")
	if !ok {
		renderError(ctx, http.StatusBadRequest, constants.ErrInvalidID)
		return
	}

	var input dto.UpdateListingInput
	if err := ctx.ShouldBind(&input); err != nil {
		addFlash(ctx, constants.FlashError, constants.ErrInvalidInput)
		ctx.Redirect(http.StatusFound, fmt.Sprintf("/listings/%d/edit", listingID))
		return
	}

	_, err := c.service.Update(listingID, input, formImage(ctx), currentUser(ctx))
	if err != nil {
		c.redirectUpdateError(ctx, listingID, err)
		return
	}

	addFlash(ctx, constants.FlashSuccess, constants.MsgListingUpdated)
	ctx.Redirect(http.StatusFound, fmt.Sprintf("/listings/%d", listingID))
}

func (c *ListingController) Delete(ctx *gin.Context) {
	listingID, ok := paramID(ctx, "id")
	if !ok {
		renderError(ctx, http.StatusBadRequest, constants.ErrInvalidID)
		return
	}

	err := c.service.Delete(listingID, currentUser(ctx))
	if err != nil {
		if errors.Is(err, apperrors.ErrListingNotFound) {
			addFlash(ctx, constants.FlashError, constants.ErrListingNotFound)
			ctx.Redirect(http.StatusFound, "/listings")
			return
		}
		if errors.Is(err, apperrors.ErrNotOwner) {
			addFlash(ctx, constants.FlashError, constants.MsgNoPermission)
			ctx.Redirect(http.StatusFound, fmt.Sprintf("/listings/%d", listingID))
			return
		}
		log.WithField("error", err.Error()).Error("delete listing failed")
		renderError(ctx, http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	addFlash(ctx, constants.FlashSuccess, constants.MsgListingDeleted)
	ctx.Redirect(http.StatusFound, "/listings")
}

func (c *ListingController) redirectUpdateError(ctx *gin.Context, listingID uint, err error) {
	switch {
	case errors.Is(err, apperrors.ErrListingNotFound):
		addFlash(ctx, constants.FlashError, constants.ErrListingNotFound)
		ctx.Redirect(http.StatusFound, "/listings")
	case errors.Is(err, apperrors.ErrNotOwner):
		addFlash(ctx, constants.FlashError, constants.MsgNoPermission)
		ctx.Redirect(http.StatusFound, fmt.Sprintf("/listings/%d", listingID))
	case errors.Is(err, apperrors.ErrUnsupportedImage):
		addFlash(ctx, constants.FlashError, "Image must be a jpg, png or webp file")
		ctx.Redirect(http.StatusFound, fmt.Sprintf("/listings/%d/edit", listingID))
	default:
		log.WithField("error", err.Error()).Error("update listing failed")
		renderError(ctx, http.StatusInternalServerError, constants.ErrUnexpected)
	}
}

// formImage returns the uploaded image header, or nil when the field was
// left empty.
func formImage(ctx *gin.Context) *multipart.FileHeader {
	file, err := ctx.FormFile("image")
	if err != nil {
		return nil
	}
	return file
}

func paramID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
