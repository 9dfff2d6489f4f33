package auction

import (
	"errors"
	"fmt"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/config"
	"auction-house/internal/models"
	"auction-house/internal/repository"
)

// Listing type values accepted by ListAuctions
const (
	TypeAll       = "all"
	TypeNoExpired = "noexpired"
	TypeExpired   = "expired"
)

// Expiry units accepted when creating a listing
const (
	ExpTypeMinutes = "minutes"
	ExpTypeHours   = "hours"
	ExpTypeDays    = "days"
)

// AuctionService handles listing creation and listing queries
type AuctionService struct {
	repo repository.AuctionDB
	cfg  config.AuctionConfig
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB, cfg config.AuctionConfig) *AuctionService {
	return &AuctionService{
		repo: repo,
		cfg:  cfg,
	}
}

// CreateAuction validates and stores a new listing. The expiry is computed
// from a duration (expTime in units of expType) relative to now and is
// immutable afterwards.
func (s *AuctionService) CreateAuction(sellerID, sellerName string, startingPrice float64, expTime int, expType string, item models.Item) (models.Auction, error) {
	if err := s.validateListing(sellerID, startingPrice, expTime, item); err != nil {
		return models.Auction{}, err
	}

	unit, err := expiryUnit(expType)
	if err != nil {
		return models.Auction{}, err
	}

	// Exact-match duplicate detection only: same seller, identical title,
	// condition and description. Near-duplicates are not caught; documented
	// limitation, not to be silently strengthened.
	if _, err := s.repo.FindDuplicateAuction(sellerID, item.Title, item.Condition, item.Description); err == nil {
		return models.Auction{}, fmt.Errorf("service: %w", auctionerrors.ErrDuplicateAuction)
	} else if !errors.Is(err, auctionerrors.ErrAuctionNotFound) {
		return models.Auction{}, fmt.Errorf("service: duplicate check failed for seller %s: %w", sellerID, err)
	}

	now := time.Now()
	auction := models.Auction{
		StartingPrice: startingPrice,
		RegDate:       now.Unix(),
		ExpDate:       now.Add(time.Duration(expTime) * unit).Unix(),
		SellerID:      sellerID,
		SellerName:    sellerName,
		Item:          item,
	}

	created, err := s.repo.CreateAuction(auction)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction for seller %s: %w", sellerID, err)
	}
	return created, nil
}

// ListAuctions returns auctions filtered by listing type. Expiry is derived
// from the stored timestamp against now; nothing is flipped in storage.
func (s *AuctionService) ListAuctions(listType string, now int64) ([]models.Auction, error) {
	var (
		auctions []models.Auction
		err      error
	)

	switch listType {
	case TypeAll:
		auctions, err = s.repo.GetAllAuctions()
	case TypeNoExpired:
		auctions, err = s.repo.GetActiveAuctions(now)
	case TypeExpired:
		auctions, err = s.repo.GetExpiredAuctions(now)
	default:
		return nil, fmt.Errorf("service: %w - %q", auctionerrors.ErrInvalidType, listType)
	}

	if err != nil {
		return nil, fmt.Errorf("service: failed to list %s auctions: %w", listType, err)
	}
	return auctions, nil
}

// validateListing applies the structural listing rules
func (s *AuctionService) validateListing(sellerID string, startingPrice float64, expTime int, item models.Item) error {
	if sellerID == "" {
		return fmt.Errorf("service: %w - missing seller reference", auctionerrors.ErrInvalidAuction)
	}
	if len(item.Title) < 4 {
		return fmt.Errorf("service: %w - title must be at least 4 characters", auctionerrors.ErrInvalidAuction)
	}
	if !item.Condition.Valid() {
		return fmt.Errorf("service: %w - condition must be New or Used", auctionerrors.ErrInvalidAuction)
	}
	if len(item.Description) < 10 {
		return fmt.Errorf("service: %w - description must be at least 10 characters", auctionerrors.ErrInvalidAuction)
	}
	if startingPrice < 0 || startingPrice > s.cfg.MaxBid {
		return fmt.Errorf("service: %w - starting price must be between 0 and %v", auctionerrors.ErrInvalidAuction, s.cfg.MaxBid)
	}
	if expTime < 1 || expTime > s.cfg.MaxAuctionTime {
		return fmt.Errorf("service: %w - exp_time must be between 1 and %d", auctionerrors.ErrInvalidAuction, s.cfg.MaxAuctionTime)
	}
	return nil
}

func expiryUnit(expType string) (time.Duration, error) {
	switch expType {
	case ExpTypeMinutes:
		return time.Minute, nil
	case ExpTypeHours:
		return time.Hour, nil
	case ExpTypeDays:
		return 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("service: %w - exp_type must be minutes, hours or days", auctionerrors.ErrInvalidAuction)
	}
}
