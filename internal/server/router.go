package server

import (
	handler "name-market/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(marketService handler.MarketServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // request IDs + logging

	marketHandler := handler.NewMarketHandler(marketService)

	locks := router.Group("/locks")
	{
		locks.POST("", marketHandler.LockHandler)
		locks.POST("/:account/unlock", marketHandler.UnlockHandler)
		locks.GET("/:account", marketHandler.GetLockHandler)
		locks.GET("/:account/status", marketHandler.LockStatusHandler)
	}

	offers := router.Group("/offers")
	{
		offers.POST("", marketHandler.OfferHandler)
		offers.POST("/:name/cancel", marketHandler.CancelOfferHandler)
		offers.GET("/:name", marketHandler.GetOfferHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("/:name", marketHandler.GetAuctionHandler)
		auctions.POST("/:name/close", marketHandler.EarlyCloseHandler)
	}

	router.POST("/bids", marketHandler.BidHandler)
	router.POST("/claims", marketHandler.ClaimHandler)

	return router
}
