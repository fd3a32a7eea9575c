package server

import (
	aggregator "repair-auctions/internal/aggregatorService"
	bidding "repair-auctions/internal/bidService"
	lifecycle "repair-auctions/internal/lifecycleService"
	handler "repair-auctions/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(lifecycleSvc *lifecycle.LifecycleService, bidSvc *bidding.BidService, aggregatorSvc *aggregator.AggregatorService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(IdentityMiddleware)      // every operation needs an authenticated caller

	auctionHandler := handler.NewAuctionHandler(lifecycleSvc)
	bidHandler := handler.NewBidHandler(bidSvc, aggregatorSvc)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListActiveAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/bids", bidHandler.PlaceBidHandler)
		auctions.POST("/:auction_id/accept", auctionHandler.AcceptBidHandler)
		auctions.PATCH("/:auction_id/status", auctionHandler.SetStatusHandler)
	}

	my := router.Group("/my")
	{
		my.GET("/auctions", auctionHandler.ListOwnAuctionsHandler)
		my.GET("/bids", bidHandler.ListMyBidsHandler)
		my.GET("/bids/stats", bidHandler.BidStatsHandler)
	}

	return router
}
