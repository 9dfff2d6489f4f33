package helpers

import model "auction-house/internal/models"

// Request/Response DTOs
type PlaceBidRequest struct {
	ItemID string  `json:"item_id" binding:"required"`
	Bid    float64 `json:"bid" binding:"required,gt=0"`
}

type ItemRequest struct {
	Title       string         `json:"title" binding:"required"`
	Condition   string         `json:"condition" binding:"required"`
	Description string         `json:"description" binding:"required"`
	OtherInfo   map[string]any `json:"other_info"`
}

type AddAuctionRequest struct {
	StartingPrice float64     `json:"starting_price" binding:"min=0"`
	ExpTime       int         `json:"exp_time" binding:"required,gt=0"`
	ExpType       string      `json:"exp_type" binding:"required,oneof=minutes hours days"`
	Item          ItemRequest `json:"item" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=255"`
	Surname  string `json:"surname" binding:"required,min=3,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	AuctionID string  `json:"auction_id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
	PlacedAt  string  `json:"placed_at"`
}

type UserDetailsResponse struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Registered int64  `json:"registered"`
}

// ToItem converts the request payload to the domain item
func (r ItemRequest) ToItem() model.Item {
	return model.Item{
		Title:       r.Title,
		Condition:   model.Condition(r.Condition),
		Description: r.Description,
		OtherInfo:   r.OtherInfo,
	}
}
