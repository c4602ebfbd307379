package server

import (
	"stayhub/constants"
	"stayhub/controllers"
	"stayhub/middlewares"
	"stayhub/repositories"
	"stayhub/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Config carries the filesystem locations the router needs; tests point them
// at temporary directories.
type Config struct {
	TemplateGlob string
	UploadDir    string
}

// SetupRouter wires repositories, services, controllers and all routes.
func SetupRouter(db *gorm.DB, tokenDB *gorm.DB, cfg Config) *gin.Engine {
	authRepository := repositories.NewAuthRepository(db)
	tokenRepository := repositories.NewTokenRepository(tokenDB)
	authService := services.NewAuthService(authRepository, tokenRepository)
	authController := controllers.NewAuthController(authService)
	apiAuthController := controllers.NewAPIAuthController(authService)

	imageService := services.NewImageService(cfg.UploadDir)
	listingRepository := repositories.NewListingRepository(db)
	reviewRepository := repositories.NewReviewRepository(db)
	listingService := services.NewListingService(listingRepository, imageService)
	reviewService := services.NewReviewService(reviewRepository, listingRepository)
	listingController := controllers.NewListingController(listingService, reviewService)
	reviewController := controllers.NewReviewController(reviewService)
	adminController := controllers.NewAdminController(listingService)
	apiListingController := controllers.NewAPIListingController(listingService, reviewService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger)
	r.Use(middlewares.SessionStore())
	r.Use(middlewares.CurrentUser(authService))

	r.LoadHTMLGlob(cfg.TemplateGlob)
	r.Static("/uploads", cfg.UploadDir)

	r.GET("/", listingController.Home)

	r.GET("/signup", authController.ShowSignup)
	r.POST("/signup", authController.Signup)
	r.GET("/login", authController.ShowLogin)
	r.POST("/login", authController.Login)
	r.POST("/logout", authController.Logout)

	listingRouter := r.Group("/listings")
	listingRouterWithAuth := r.Group("/listings", middlewares.RequireLogin())

	listingRouter.GET("", listingController.Index)
	listingRouter.GET("/:id", listingController.Show)
	listingRouterWithAuth.GET("/new", listingController.New)
	listingRouterWithAuth.POST("", listingController.Create)
	listingRouterWithAuth.GET("/:id/edit", listingController.Edit)
	listingRouterWithAuth.POST("/:id", listingController.Update)
	listingRouterWithAuth.POST("/:id/delete", listingController.Delete)
	listingRouterWithAuth.POST("/:id/reviews", reviewController.Create)
	listingRouterWithAuth.POST("/:id/reviews/:reviewID/delete", reviewController.Delete)

	adminRouter := r.Group("/admin", middlewares.RequireLogin(), middlewares.RequireRole(constants.RoleAdmin))
	adminRouter.GET("/listings", adminController.Listings)

	// JSON API is the cross-origin surface
	apiRouter := r.Group("/api", cors.Default())
	apiRouter.POST("/auth/login", apiAuthController.Login)
	apiRouter.POST("/auth/logout", apiAuthController.Logout)

	apiListingRouter := apiRouter.Group("/listings", middlewares.APIAuthMiddleware(authService))
	apiListingRouter.GET("", apiListingController.Index)
	apiListingRouter.GET("/:id", apiListingController.Show)

	r.NoRoute(controllers.NotFound)

	return r
}
