package repository

import (
	"fmt"
	"sync"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/utils"
)

// AuctionDB defines the auction storage interface for the marketplace
type AuctionDB interface {
	CreateAuction(auction model.Auction) (model.Auction, error)
	GetAuctionByID(auctionID string) (model.Auction, error)
	GetActiveAuctions(now int64) ([]model.Auction, error)
	GetExpiredAuctions(now int64) ([]model.Auction, error)
	GetAllAuctions() ([]model.Auction, error)
	FindDuplicateAuction(sellerID, title string, condition model.Condition, description string) (model.Auction, error)
	AppendBid(auctionID string, bid model.Bid) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction // key: auctionID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[string]model.Auction),
	}
}

// CreateAuction assigns an identity and a registration timestamp and stores
// the auction.
func (r *MemoryRepo) CreateAuction(auction model.Auction) (model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if auction.AuctionID == "" {
		auction.AuctionID = utils.GenerateID()
	}
	if auction.RegDate == 0 {
		auction.RegDate = time.Now().Unix()
	}
	if auction.Bids == nil {
		auction.Bids = []model.Bid{}
	}
	if auction.Item.ItemID == "" {
		auction.Item.ItemID = utils.GenerateID()
	}

	r.auctions[auction.AuctionID] = auction
	return copyAuction(auction), nil
}

// GetAuctionByID returns the auction with the given id. A malformed id and a
// missing record are distinct failures: the first is a client error, the
// second may mean the listing was removed.
func (r *MemoryRepo) GetAuctionByID(auctionID string) (model.Auction, error) {
	if !utils.ValidID(auctionID) {
		return model.Auction{}, fmt.Errorf("get auction %q: %w", auctionID, auctionerrors.ErrInvalidAuctionID)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return copyAuction(auction), nil
}

// GetActiveAuctions returns auctions whose expiry lies strictly after now
func (r *MemoryRepo) GetActiveAuctions(now int64) ([]model.Auction, error) {
	return r.filter(func(a model.Auction) bool { return a.ExpDate > now }), nil
}

// GetExpiredAuctions returns auctions whose expiry is at or before now
func (r *MemoryRepo) GetExpiredAuctions(now int64) ([]model.Auction, error) {
	return r.filter(func(a model.Auction) bool { return a.ExpDate <= now }), nil
}

// GetAllAuctions returns every stored auction
func (r *MemoryRepo) GetAllAuctions() ([]model.Auction, error) {
	return r.filter(func(model.Auction) bool { return true }), nil
}

// FindDuplicateAuction looks for an existing listing by the same seller with
// an identical title, condition and description. The match is exact and
// case-sensitive: a near-duplicate with different whitespace or casing slips
// through. Known limitation, kept on purpose.
func (r *MemoryRepo) FindDuplicateAuction(sellerID, title string, condition model.Condition, description string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.auctions {
		if a.SellerID == sellerID &&
			a.Item.Title == title &&
			a.Item.Condition == condition &&
			a.Item.Description == description {
			return copyAuction(a), nil
		}
	}
	return model.Auction{}, fmt.Errorf("find duplicate for seller %s: %w", sellerID, auctionerrors.ErrAuctionNotFound)
}

// AppendBid appends a bid to an auction's bid list. The liveness, floor and
// outbid predicates are re-checked inside the same critical section as the
// append, so two concurrent bidders who both read the same highest bid can
// never both be recorded: the loser of the race fails the re-check here.
func (r *MemoryRepo) AppendBid(auctionID string, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return fmt.Errorf("append bid to auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	if auction.Expired(bid.PlacedAt.Unix()) {
		return fmt.Errorf("append bid to auction %s: %w", auctionID, auctionerrors.ErrAuctionExpired)
	}
	if bid.Amount <= auction.StartingPrice {
		return fmt.Errorf("append bid to auction %s: %w", auctionID, auctionerrors.ErrBelowStartingPrice)
	}
	for _, existing := range auction.Bids {
		if bid.Amount <= existing.Amount {
			return fmt.Errorf("append bid to auction %s: %w", auctionID, auctionerrors.ErrUnderbid)
		}
	}

	// copy-on-write keeps previously returned snapshots untouched
	bids := make([]model.Bid, 0, len(auction.Bids)+1)
	bids = append(bids, auction.Bids...)
	bids = append(bids, bid)
	auction.Bids = bids
	r.auctions[auctionID] = auction

	return nil
}

// filter returns copies of every auction satisfying keep
func (r *MemoryRepo) filter(keep func(model.Auction) bool) []model.Auction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		if keep(a) {
			out = append(out, copyAuction(a))
		}
	}
	return out
}

// copyAuction returns a deep enough copy that callers cannot mutate the
// stored bid list through the returned value
func copyAuction(a model.Auction) model.Auction {
	bids := make([]model.Bid, len(a.Bids))
	copy(bids, a.Bids)
	a.Bids = bids
	return a
}
