package models

import "time"

// Condition describes the physical state of an auctioned item
type Condition string

const (
	ConditionNew  Condition = "New"
	ConditionUsed Condition = "Used"
)

// Valid reports whether the condition is one of the supported values
func (c Condition) Valid() bool {
	return c == ConditionNew || c == ConditionUsed
}

// User represents a registered account in the marketplace
type User struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Email        string `json:"email"`
	Password     string `json:"-"` // bcrypt hash, never serialized
	RegisteredOn int64  `json:"registered_on"`
}

// Item represents the goods being sold in an auction.
// Once embedded in an Auction the item is immutable.
type Item struct {
	ItemID      string         `json:"item_id"`
	Title       string         `json:"title"`
	Condition   Condition      `json:"condition"`
	Description string         `json:"description"`
	OtherInfo   map[string]any `json:"other_info,omitempty"`
}

// Bid is a single offer on an auction. Bids are immutable once appended;
// the position in the auction's bid slice is the submission order.
type Bid struct {
	BidID    string    `json:"bid_id"`
	UserID   string    `json:"user_id"`
	Amount   float64   `json:"amount"`
	PlacedAt time.Time `json:"placed_at"`
}

// Auction is a listing of one item with a price floor and an expiry.
// There is no stored status field: whether an auction is open is always
// derived from ExpDate against the current time.
type Auction struct {
	AuctionID     string  `json:"auction_id"`
	StartingPrice float64 `json:"starting_price"`
	RegDate       int64   `json:"reg_date"`
	ExpDate       int64   `json:"exp_date"`
	SellerID      string  `json:"seller_id"`
	SellerName    string  `json:"seller_name,omitempty"`
	Item          Item    `json:"item"`
	Bids          []Bid   `json:"bids"`
}

// Expired reports whether the auction can no longer accept bids at the
// given unix timestamp.
func (a Auction) Expired(now int64) bool {
	return a.ExpDate < now
}
