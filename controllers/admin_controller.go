package controllers

import (
	"net/http"

	"stayhub/constants"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type IAdminController interface {
	Listings(ctx *gin.Context)
}

type AdminController struct {
	listings services.IListingService
}

func NewAdminController(listings services.IListingService) IAdminController {
	return &AdminController{listings: listings}
}

// Listings renders the moderation dashboard with every listing. Deletion
// goes through the regular listing delete route; admins pass its ownership
// check.
func (c *AdminController) Listings(ctx *gin.Context) {
	all, err := c.listings.FindAll()
	if err != nil {
		log.WithField("error", err.Error()).Error("admin listings failed")
		renderError(ctx, http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	render(ctx, http.StatusOK, "admin/listings", gin.H{"listings": all})
}
