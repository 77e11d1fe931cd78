package router

import (
	"styleflame/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupOutfitRoutes(api *echo.Group, handler *rest.OutfitHandler, optionalAuth, authRequired, adminOnly echo.MiddlewareFunc) {
	outfits := api.Group("/outfits")

	outfits.GET("", handler.GetAllOutfits, optionalAuth)
	outfits.GET("/:id", handler.GetOutfitByID, optionalAuth)

	outfits.POST("", handler.CreateOutfit, authRequired, adminOnly)
	outfits.PUT("/:id", handler.UpdateOutfit, authRequired, adminOnly)
	outfits.DELETE("/:id", handler.DeleteOutfit, authRequired, adminOnly)
}

func SetupSearchRoutes(api *echo.Group, handler *rest.SearchHandler, optionalAuth echo.MiddlewareFunc) {
	api.GET("/outfits/search", handler.SearchOutfits, optionalAuth)
}

func SetupInspirationRoutes(api *echo.Group, handler *rest.InspirationHandler, authRequired echo.MiddlewareFunc) {
	api.GET("/inspiration", handler.GetInspiration, authRequired)
}

func SetupProfileRoutes(api *echo.Group, handler *rest.ProfileHandler, authRequired echo.MiddlewareFunc) {
	api.GET("/profile/styles", handler.GetStyleProfile, authRequired)
}

func SetupInteractionRoutes(api *echo.Group, handler *rest.InteractionHandler, authRequired echo.MiddlewareFunc) {
	outfits := api.Group("/outfits", authRequired)
	outfits.POST("/:id/upvote", handler.UpvoteOutfit)
	outfits.DELETE("/:id/upvote", handler.UnvoteOutfit)
	outfits.POST("/:id/buy", handler.LogOutfitBuy)
	outfits.POST("/:id/show-time", handler.LogOutfitShowTime)
	outfits.POST("/:id/zoom-show-time", handler.LogOutfitZoomShowTime)

	articles := api.Group("/articles", authRequired)
	articles.POST("/:id/buy", handler.LogArticleBuy)
	articles.POST("/:id/zoom-show-time", handler.LogArticleZoomShowTime)
}

func SetupOccasionRoutes(api *echo.Group, handler *rest.OccasionHandler, optionalAuth, authRequired, adminOnly echo.MiddlewareFunc) {
	occasions := api.Group("/occasions")

	occasions.GET("", handler.GetAllOccasions, optionalAuth)
	occasions.GET("/:id", handler.GetOccasionByID, optionalAuth)

	occasions.POST("", handler.CreateOccasion, authRequired, adminOnly)
	occasions.PUT("/:id", handler.UpdateOccasion, authRequired, adminOnly)
	occasions.DELETE("/:id", handler.DeleteOccasion, authRequired, adminOnly)
}

func SetupStyleRoutes(api *echo.Group, handler *rest.StyleHandler, optionalAuth, authRequired, adminOnly echo.MiddlewareFunc) {
	styles := api.Group("/styles")

	styles.GET("", handler.GetAllStyles, optionalAuth)
	styles.GET("/:id", handler.GetStyleByID, optionalAuth)

	styles.POST("", handler.CreateStyle, authRequired, adminOnly)
	styles.PUT("/:id", handler.UpdateStyle, authRequired, adminOnly)
	styles.DELETE("/:id", handler.DeleteStyle, authRequired, adminOnly)
}

func SetupStylistRoutes(api *echo.Group, handler *rest.StylistHandler, optionalAuth, authRequired, adminOnly echo.MiddlewareFunc) {
	stylists := api.Group("/stylists")

	stylists.GET("", handler.GetAllStylists, optionalAuth)
	stylists.GET("/:id", handler.GetStylistByID, optionalAuth)

	stylists.POST("", handler.CreateStylist, authRequired, adminOnly)
	stylists.PUT("/:id", handler.UpdateStylist, authRequired, adminOnly)
	stylists.DELETE("/:id", handler.DeleteStylist, authRequired, adminOnly)
}

func SetupArticleRoutes(api *echo.Group, handler *rest.ArticleHandler, optionalAuth echo.MiddlewareFunc) {
	articles := api.Group("/articles")

	articles.GET("", handler.GetAllArticles, optionalAuth)
	articles.GET("/:id", handler.GetArticleByID, optionalAuth)
}
