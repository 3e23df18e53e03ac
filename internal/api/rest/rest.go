package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Item endpoints
	items := router.Group("/items")
	{
		items.POST("", handler.CreateItem)
		items.GET("/:pk", handler.GetItem)
		items.GET("/:pk/mint", handler.GetMintingData)
	}

	// Player endpoints
	game := router.Group("/game")
	{
		game.POST("/:gameId/player", handler.LinkPlayer)
		game.GET("/:gameId/player", handler.GetPlayer)
	}

	// Public token metadata, referenced by the contract's base URI
	router.GET("/:itemPk", handler.GetTokenMetadata)
}
