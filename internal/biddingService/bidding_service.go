package bidding

import (
	"errors"
	"fmt"
	"math"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/config"
	"auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// BiddingService decides whether an incoming bid is accepted. The checks in
// PlaceBid run in a fixed order and the first failing check wins; the order
// is part of the contract, not an implementation detail.
type BiddingService struct {
	repo repository.AuctionDB
	cfg  config.AuctionConfig
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB, cfg config.AuctionConfig) *BiddingService {
	return &BiddingService{
		repo: repo,
		cfg:  cfg,
	}
}

// PlaceBid validates and records a user's bid on an auction.
//
// Validation order: input shape, auction existence, liveness, self-bid,
// starting price floor, current highest bid, configured ceiling. A missing
// auction and an expired one surface the same message on purpose, so callers
// cannot probe which listings ever existed.
func (s *BiddingService) PlaceBid(auctionID, userID string, amount float64) (models.Bid, error) {
	if err := s.validateInput(auctionID, userID, amount); err != nil {
		return models.Bid{}, err
	}

	auction, err := s.repo.GetAuctionByID(auctionID)
	switch {
	case errors.Is(err, auctionerrors.ErrInvalidAuctionID):
		return models.Bid{}, fmt.Errorf("service: %w - this auction does not exist", auctionerrors.ErrInvalidAuctionID)
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return models.Bid{}, fmt.Errorf("service: %w", auctionerrors.ErrAuctionExpired)
	case err != nil:
		return models.Bid{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	now := time.Now().Unix()
	if auction.Expired(now) {
		return models.Bid{}, fmt.Errorf("service: %w", auctionerrors.ErrAuctionExpired)
	}

	if auction.SellerID == userID {
		return models.Bid{}, fmt.Errorf("service: %w", auctionerrors.ErrSelfBid)
	}

	if amount <= auction.StartingPrice {
		return models.Bid{}, fmt.Errorf("service: %w - the seller has a starting price of %s",
			auctionerrors.ErrBelowStartingPrice, utils.FormatGBP(auction.StartingPrice))
	}

	if amounts := utils.ExtractAmounts(auction.Bids); len(amounts) > 0 {
		if highest := amounts[len(amounts)-1]; amount <= highest {
			return models.Bid{}, fmt.Errorf("service: %w - the current highest bid is %s",
				auctionerrors.ErrUnderbid, utils.FormatGBP(highest))
		}
	}

	if amount > s.cfg.MaxBid {
		return models.Bid{}, fmt.Errorf("service: %w - the highest possible value to bid is %s",
			auctionerrors.ErrAboveMaximum, utils.FormatGBP(s.cfg.MaxBid))
	}

	bid := models.Bid{
		BidID:    utils.GenerateID(),
		UserID:   userID,
		Amount:   amount,
		PlacedAt: time.Now().UTC(),
	}

	// AppendBid re-checks liveness, floor and highest bid under the store's
	// lock, so a concurrent bid that commits between our read and this append
	// makes the append fail instead of silently losing an update.
	if err := s.repo.AppendBid(auctionID, bid); err != nil {
		if errors.Is(err, auctionerrors.ErrUnderbid) || errors.Is(err, auctionerrors.ErrAuctionExpired) ||
			errors.Is(err, auctionerrors.ErrBelowStartingPrice) {
			return models.Bid{}, fmt.Errorf("service: %w", err)
		}
		return models.Bid{}, fmt.Errorf("service: failed to record bid on auction %s by user %s: %w", auctionID, userID, err)
	}

	return bid, nil
}

// validateInput checks the structural shape of the request: a well-formed
// auction reference, a known bidder and a whole, positive amount within the
// configured ceiling.
func (s *BiddingService) validateInput(auctionID, userID string, amount float64) error {
	if auctionID == "" || userID == "" {
		return fmt.Errorf("service: %w - missing auction or user reference", auctionerrors.ErrInvalidBid)
	}
	if amount < 1 || amount != math.Trunc(amount) {
		return fmt.Errorf("service: %w - bid must be a whole amount of at least 1", auctionerrors.ErrInvalidBid)
	}
	if amount > s.cfg.MaxBid {
		return fmt.Errorf("service: %w - bid must not exceed %s", auctionerrors.ErrInvalidBid, utils.FormatGBP(s.cfg.MaxBid))
	}
	return nil
}
