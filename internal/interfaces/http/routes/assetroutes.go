package routes

import (
	"github.com/gin-gonic/gin"

	assethandlers "github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/asset"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/middleware"
)

type AssetRouteConfig struct {
	AssetHandler   *assethandlers.AssetHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAssetRoutes configures asset inventory routes. Role checks happen in the use cases.
func SetupAssetRoutes(api *gin.RouterGroup, config *AssetRouteConfig) {
	assets := api.Group("/assets")
	assets.Use(config.AuthMiddleware.RequireAuth())
	{
		assets.GET("", config.AssetHandler.ListAssets)
		assets.POST("", config.AssetHandler.CreateAsset)

		// History entries addressed by their own id (must come BEFORE /:id)
		assets.PUT("/history/:history_id", config.AssetHandler.UpdateHistory)
		assets.DELETE("/history/:history_id", config.AssetHandler.DeleteHistory)

		assets.GET("/:id/history", config.AssetHandler.ListHistory)
		assets.POST("/:id/history", config.AssetHandler.AddHistory)

		assets.GET("/:id", config.AssetHandler.GetAsset)
		assets.PUT("/:id", config.AssetHandler.UpdateAsset)
		assets.DELETE("/:id", config.AssetHandler.DeleteAsset)
	}
}
