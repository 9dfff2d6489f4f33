package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	auction "auction-house/internal/auctionService"
	bidding "auction-house/internal/biddingService"
	history "auction-house/internal/historyService"
	"auction-house/internal/metrics"
	user "auction-house/internal/userService"
	handler "auction-house/services/auction/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	auctionSvc *auction.AuctionService,
	biddingSvc *bidding.BiddingService,
	historySvc *history.HistoryService,
	userSvc *user.UserService,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging and metrics

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	auctionHandler := handler.NewAuctionHandler(auctionSvc, biddingSvc)
	userHandler := handler.NewUserHandler(historySvc, userSvc)
	authHandler := handler.NewAuthHandler(userSvc)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.RegisterHandler)
		auth.POST("/login", authHandler.LoginHandler)
	}

	auctions := api.Group("/auction", AuthMiddleware(userSvc))
	{
		auctions.GET("/:type", auctionHandler.ListAuctionsHandler)
		auctions.POST("/bid", auctionHandler.PlaceBidHandler)
		auctions.POST("/add", auctionHandler.AddAuctionHandler)
	}

	users := api.Group("/user", AuthMiddleware(userSvc))
	{
		users.GET("/history/:type", userHandler.HistoryHandler)
		users.GET("/details", userHandler.DetailsHandler)
	}

	return router
}
