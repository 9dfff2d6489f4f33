package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"auction-house/internal/metrics"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"
)

// ContextUserID is the gin context key under which the auth middleware
// stores the verified user id.
const ContextUserID = "user_id"

type AuctionServiceInterface interface {
	CreateAuction(sellerID, sellerName string, startingPrice float64, expTime int, expType string, item model.Item) (model.Auction, error)
	ListAuctions(listType string, now int64) ([]model.Auction, error)
}

type BiddingServiceInterface interface {
	PlaceBid(auctionID, userID string, amount float64) (model.Bid, error)
}

type AuctionHandler struct {
	auctions AuctionServiceInterface
	bidding  BiddingServiceInterface
}

func NewAuctionHandler(auctions AuctionServiceInterface, bidding BiddingServiceInterface) *AuctionHandler {
	return &AuctionHandler{auctions: auctions, bidding: bidding}
}

// ListAuctionsHandler handles GET /api/auction/:type
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	listType := c.Param("type")

	auctions, err := h.auctions.ListAuctions(listType, time.Now().Unix())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("ListAuctionsHandler: failed to list auctions", map[string]any{
			"type":  listType,
			"error": err.Error(),
		})
		return
	}

	page, limit := parsePagination(c)
	result := utils.Paginate(page, limit, auctions)

	utils.JSONPaginated(c, http.StatusOK, result, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"type":  listType,
		"page":  result.Metadata.CurrentPage,
		"total": result.Metadata.TotalRecords,
	})
}

// PlaceBidHandler handles POST /api/auction/bid
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	userID := c.GetString(ContextUserID)
	bid, err := h.bidding.PlaceBid(req.ItemID, userID, req.Bid)
	metrics.RecordBidOutcome(helpers.OutcomeLabel(err))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlaceBidHandler: bid rejected", map[string]any{
			"item_id": req.ItemID,
			"user_id": userID,
			"amount":  req.Bid,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.BidID,
		AuctionID: req.ItemID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		PlacedAt:  bid.PlacedAt.UTC().Format(time.RFC3339),
	}

	message := fmt.Sprintf("your bid of %s was placed successfully", utils.FormatGBP(bid.Amount))
	utils.JSONResponse(c, http.StatusCreated, resp, message)
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": req.ItemID,
		"user_id":    userID,
		"amount":     bid.Amount,
	})
}

// AddAuctionHandler handles POST /api/auction/add
func (h *AuctionHandler) AddAuctionHandler(c *gin.Context) {
	var req helpers.AddAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddAuctionHandler", err)
		return
	}

	sellerID := c.GetString(ContextUserID)
	auction, err := h.auctions.CreateAuction(sellerID, "", req.StartingPrice, req.ExpTime, req.ExpType, req.Item.ToItem())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddAuctionHandler: failed to add auction", map[string]any{
			"seller_id": sellerID,
			"title":     req.Item.Title,
			"error":     err.Error(),
		})
		return
	}

	metrics.RecordAuctionCreated()
	utils.JSONResponse(c, http.StatusCreated, auction, "the new item has been added to the auction")
	helpers.LogSuccess("AddAuctionHandler", "auction added successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"seller_id":  sellerID,
		"exp_date":   auction.ExpDate,
	})
}

// parsePagination reads page and limit query params; anything absent or
// non-numeric falls back to the defaults inside Paginate.
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return page, limit
}
