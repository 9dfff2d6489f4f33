package history

import (
	"fmt"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// History kinds accepted by the classifier
const (
	TypeSold = "sold"
	TypeWon  = "won"
	TypeLost = "lost"
)

// HistoryService classifies finished auctions relative to a requesting user.
// All classifications are computed views over the store; nothing is written.
type HistoryService struct {
	repo repository.AuctionDB
}

// NewHistoryService creates a new HistoryService instance
func NewHistoryService(repo repository.AuctionDB) *HistoryService {
	return &HistoryService{
		repo: repo,
	}
}

// History returns the expired auctions matching the requested classification:
//
//	sold - the requester listed the item and at least one bid arrived
//	won  - the requester holds the winning bid on someone else's auction
//	lost - the requester bid on someone else's auction and did not win
//
// Auctions that expired with no bids have no winner and never appear.
func (s *HistoryService) History(userID, historyType string, now int64) ([]models.Auction, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - missing user reference", auctionerrors.ErrInvalidBid)
	}

	expired, err := s.repo.GetExpiredAuctions(now)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load expired auctions: %w", err)
	}

	matches := make([]models.Auction, 0, len(expired))
	for _, a := range expired {
		if len(a.Bids) == 0 {
			continue
		}

		switch historyType {
		case TypeSold:
			if a.SellerID == userID {
				matches = append(matches, a)
			}
		case TypeWon:
			if a.SellerID == userID {
				continue
			}
			if win, ok := WinningBid(a); ok && win.UserID == userID {
				matches = append(matches, a)
			}
		case TypeLost:
			if a.SellerID == userID {
				continue
			}
			if lostBy(a, userID) {
				matches = append(matches, a)
			}
		default:
			return nil, fmt.Errorf("service: %w - %q", auctionerrors.ErrInvalidType, historyType)
		}
	}

	return matches, nil
}

// WinningBid returns the highest bid of an auction. When several bids share
// the maximum amount the earliest-submitted one wins; the rule is explicit
// here instead of leaning on sort stability. The second return is false for
// an auction with no bids.
func WinningBid(a models.Auction) (models.Bid, bool) {
	if len(a.Bids) == 0 {
		return models.Bid{}, false
	}

	win := a.Bids[0]
	for _, b := range a.Bids[1:] {
		if b.Amount > win.Amount {
			win = b
		}
	}
	return win, true
}

// lostBy reports whether userID participated without reaching the winning
// amount. The winning amount is the last element of the sorted amounts.
func lostBy(a models.Auction, userID string) bool {
	amounts := utils.ExtractAmounts(a.Bids)
	if len(amounts) == 0 {
		return false
	}
	winning := amounts[len(amounts)-1]

	participated := false
	for _, b := range a.Bids {
		if b.UserID != userID {
			continue
		}
		participated = true
		if b.Amount == winning {
			return false
		}
	}
	return participated
}
