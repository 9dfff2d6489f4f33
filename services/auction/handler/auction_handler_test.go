package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
)

// authAs returns a middleware that injects a verified user id the way the
// real auth middleware does after token verification.
func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// Test ListAuctionsHandler
func TestListAuctionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuctions := NewMockAuctionServiceInterface(ctrl)
	mockBidding := NewMockBiddingServiceInterface(ctrl)
	handler := NewAuctionHandler(mockAuctions, mockBidding)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auction/:type", handler.ListAuctionsHandler)

	sample := make([]model.Auction, 25)
	for i := range sample {
		sample[i] = model.Auction{AuctionID: fmt.Sprintf("auction%d", i+1), SellerID: "seller1"}
	}

	tests := []struct {
		name           string
		url            string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validate       func(t *testing.T, resp map[string]any)
	}{
		{
			name: "success_default_pagination",
			url:  "/auction/all",
			mockSetup: func() {
				mockAuctions.EXPECT().ListAuctions("all", gomock.Any()).Return(sample, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auctions retrieved successfully",
			validate: func(t *testing.T, resp map[string]any) {
				data := resp["data"].([]any)
				require.Len(t, data, 10)

				meta := resp["metadata"].(map[string]any)
				require.Equal(t, float64(1), meta["current_page"])
				require.Equal(t, float64(10), meta["current_limit"])
				require.Equal(t, float64(25), meta["total_records"])
				require.Equal(t, float64(3), meta["total_pages"])
				require.Equal(t, true, meta["has_more"])
			},
		},
		{
			name: "success_last_partial_page",
			url:  "/auction/all?page=3&limit=10",
			mockSetup: func() {
				mockAuctions.EXPECT().ListAuctions("all", gomock.Any()).Return(sample, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auctions retrieved successfully",
			validate: func(t *testing.T, resp map[string]any) {
				data := resp["data"].([]any)
				require.Len(t, data, 5)

				meta := resp["metadata"].(map[string]any)
				require.Equal(t, float64(3), meta["current_page"])
				require.Equal(t, false, meta["has_more"])
			},
		},
		{
			name: "success_page_beyond_range",
			url:  "/auction/all?page=99",
			mockSetup: func() {
				mockAuctions.EXPECT().ListAuctions("all", gomock.Any()).Return(sample, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auctions retrieved successfully",
			validate: func(t *testing.T, resp map[string]any) {
				data := resp["data"].([]any)
				require.Len(t, data, 0)
			},
		},
		{
			name: "success_noexpired",
			url:  "/auction/noexpired",
			mockSetup: func() {
				mockAuctions.EXPECT().ListAuctions("noexpired", gomock.Any()).
					Return([]model.Auction{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auctions retrieved successfully",
			validate: func(t *testing.T, resp map[string]any) {
				data := resp["data"].([]any)
				require.Len(t, data, 0)
			},
		},
		{
			name: "unknown_listing_type",
			url:  "/auction/soon",
			mockSetup: func() {
				mockAuctions.EXPECT().ListAuctions("soon", gomock.Any()).
					Return(nil, auctionerrors.ErrInvalidType)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "unknown listing type",
		},
		{
			name: "service_generic_error",
			url:  "/auction/all",
			mockSetup: func() {
				mockAuctions.EXPECT().ListAuctions("all", gomock.Any()).
					Return(nil, errors.New("store read failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validate != nil && w.Code == http.StatusOK {
				tc.validate(t, resp)
			}
		})
	}
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuctions := NewMockAuctionServiceInterface(ctrl)
	mockBidding := NewMockBiddingServiceInterface(ctrl)
	handler := NewAuctionHandler(mockAuctions, mockBidding)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auction/bid", authAs("bidder1"), handler.PlaceBidHandler)

	auctionID := uuid.NewString()
	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_valid_bid",
			requestBody: helpers.PlaceBidRequest{ItemID: auctionID, Bid: 100},
			mockSetup: func() {
				mockBidding.EXPECT().
					PlaceBid(auctionID, "bidder1", 100.0).
					Return(model.Bid{
						BidID:    uuid.NewString(),
						UserID:   "bidder1",
						Amount:   100.0,
						PlacedAt: now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "was placed successfully",
			validateData: func(t *testing.T, data map[string]any) {
				bidID := data["bid_id"].(string)
				require.NotEmpty(t, bidID)
				_, parseErr := uuid.Parse(bidID)
				require.NoError(t, parseErr, "BidID should be a valid UUID")
				require.Equal(t, auctionID, data["auction_id"])
				require.Equal(t, "bidder1", data["user_id"])
				require.Equal(t, 100.0, data["amount"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_item_id",
			requestBody:    helpers.PlaceBidRequest{ItemID: "", Bid: 50},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "zero_bid",
			requestBody:    helpers.PlaceBidRequest{ItemID: auctionID, Bid: 0},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "negative_bid",
			requestBody:    helpers.PlaceBidRequest{ItemID: auctionID, Bid: -10},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "service_invalid_bid",
			requestBody: helpers.PlaceBidRequest{ItemID: auctionID, Bid: 50.5},
			mockSetup: func() {
				mockBidding.EXPECT().
					PlaceBid(auctionID, "bidder1", 50.5).
					Return(model.Bid{}, auctionerrors.ErrInvalidBid)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid bid details",
		},
		{
			name:        "service_auction_missing",
			requestBody: helpers.PlaceBidRequest{ItemID: "not-a-valid-id", Bid: 50},
			mockSetup: func() {
				mockBidding.EXPECT().
					PlaceBid("not-a-valid-id", "bidder1", 50.0).
					Return(model.Bid{}, auctionerrors.ErrInvalidAuctionID)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "this auction does not exist",
		},
		{
			name:        "service_auction_expired",
			requestBody: helpers.PlaceBidRequest{ItemID: auctionID, Bid: 50},
			mockSetup: func() {
				mockBidding.EXPECT().
					PlaceBid(auctionID, "bidder1", 50.0).
					Return(model.Bid{}, auctionerrors.ErrAuctionExpired)
			},
			expectedStatus: http.StatusGone,
			expectedMsg:    "this auction has expired or does not exist",
		},
		{
			name:        "service_self_bid",
			requestBody: helpers.PlaceBidRequest{ItemID: auctionID, Bid: 50},
			mockSetup: func() {
				mockBidding.EXPECT().
					PlaceBid(auctionID, "bidder1", 50.0).
					Return(model.Bid{}, auctionerrors.ErrSelfBid)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "you can not bid for your own item",
		},
		{
			name:        "service_below_starting_price",
			requestBody: helpers.PlaceBidRequest{ItemID: auctionID, Bid: 5},
			mockSetup: func() {
				mockBidding.EXPECT().
					PlaceBid(auctionID, "bidder1", 5.0).
					Return(model.Bid{}, auctionerrors.ErrBelowStartingPrice)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid is below the starting price",
		},
		{
			name:        "service_underbid",
			requestBody: helpers.PlaceBidRequest{ItemID: auctionID, Bid: 50},
			mockSetup: func() {
				mockBidding.EXPECT().
					PlaceBid(auctionID, "bidder1", 50.0).
					Return(model.Bid{}, auctionerrors.ErrUnderbid)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid does not beat the current highest bid",
		},
		{
			name:        "service_generic_error",
			requestBody: helpers.PlaceBidRequest{ItemID: auctionID, Bid: 100},
			mockSetup: func() {
				mockBidding.EXPECT().
					PlaceBid(auctionID, "bidder1", 100.0).
					Return(model.Bid{}, errors.New("store write failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/auction/bid", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test AddAuctionHandler
func TestAddAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuctions := NewMockAuctionServiceInterface(ctrl)
	mockBidding := NewMockBiddingServiceInterface(ctrl)
	handler := NewAuctionHandler(mockAuctions, mockBidding)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auction/add", authAs("seller1"), handler.AddAuctionHandler)

	validBody := helpers.AddAuctionRequest{
		StartingPrice: 100,
		ExpTime:       3,
		ExpType:       "days",
		Item: helpers.ItemRequest{
			Title:       "mountain bike",
			Condition:   "Used",
			Description: "hardtail bike, recently serviced",
		},
	}

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_valid_listing",
			requestBody: validBody,
			mockSetup: func() {
				mockAuctions.EXPECT().
					CreateAuction("seller1", "", 100.0, 3, "days", validBody.Item.ToItem()).
					DoAndReturn(func(sellerID, sellerName string, startingPrice float64, expTime int, expType string, item model.Item) (model.Auction, error) {
						return model.Auction{
							AuctionID:     uuid.NewString(),
							StartingPrice: startingPrice,
							SellerID:      sellerID,
							Item:          item,
						}, nil
					})
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "the new item has been added to the auction",
			validateData: func(t *testing.T, data map[string]any) {
				require.NotEmpty(t, data["auction_id"])
				require.Equal(t, "seller1", data["seller_id"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "unknown_exp_type_rejected_by_binding",
			requestBody: helpers.AddAuctionRequest{
				StartingPrice: 100,
				ExpTime:       3,
				ExpType:       "weeks",
				Item:          validBody.Item,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_exp_time",
			requestBody: helpers.AddAuctionRequest{
				StartingPrice: 100,
				ExpType:       "days",
				Item:          validBody.Item,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "service_invalid_auction",
			requestBody: validBody,
			mockSetup: func() {
				mockAuctions.EXPECT().
					CreateAuction("seller1", "", 100.0, 3, "days", validBody.Item.ToItem()).
					Return(model.Auction{}, auctionerrors.ErrInvalidAuction)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid auction details",
		},
		{
			name:        "service_duplicate_listing",
			requestBody: validBody,
			mockSetup: func() {
				mockAuctions.EXPECT().
					CreateAuction("seller1", "", 100.0, 3, "days", validBody.Item.ToItem()).
					Return(model.Auction{}, auctionerrors.ErrDuplicateAuction)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "this item is added already",
		},
		{
			name:        "service_generic_error",
			requestBody: validBody,
			mockSetup: func() {
				mockAuctions.EXPECT().
					CreateAuction("seller1", "", 100.0, 3, "days", validBody.Item.ToItem()).
					Return(model.Auction{}, errors.New("store write failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/auction/add", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}
