package main

import (
	"fmt"
	"os"

	auction "auction-house/internal/auctionService"
	bidding "auction-house/internal/biddingService"
	"auction-house/internal/config"
	history "auction-house/internal/historyService"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	user "auction-house/internal/userService"
	"auction-house/utils"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	utils.SetLogLevel(cfg.Log.Level)

	auctionRepo := repository.NewMemoryRepo()
	userRepo := repository.NewMemoryUserRepo()

	auctionSvc := auction.NewAuctionService(auctionRepo, cfg.Auction)
	biddingSvc := bidding.NewBiddingService(auctionRepo, cfg.Auction)
	historySvc := history.NewHistoryService(auctionRepo)
	userSvc := user.NewUserService(userRepo, cfg.Auth)

	router := server.SetupRouter(auctionSvc, biddingSvc, historySvc, userSvc)

	port := ":" + cfg.Server.Port
	utils.Info("Starting auction server", map[string]any{"port": port})
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
